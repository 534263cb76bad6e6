package validation

import (
	"fmt"
	"time"
)

// Field constraint limits
var (
	// Name validation min/max length
	NameMinLength = 3
	NameMaxLength = 255

	// Rating bounds
	RatingMin = 0
	RatingMax = 100

	// Course capacity bounds
	MaxStudentsMin = 0
	MaxStudentsMax = 100
)

// Rule validates a single field value
type Rule interface {
	Check(value interface{}) error
}

// StringRule validates string length bounds
type StringRule struct {
	MinLen int
	MaxLen int
}

// Check performs validation
func (r StringRule) Check(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected a string value")
	}
	if len(s) < r.MinLen {
		return fmt.Errorf("must be at least %d characters", r.MinLen)
	}
	if r.MaxLen > 0 && len(s) > r.MaxLen {
		return fmt.Errorf("must be at most %d characters", r.MaxLen)
	}
	return nil
}

// IntRangeRule validates inclusive integer bounds
type IntRangeRule struct {
	Min int
	Max int
}

// Check performs validation
func (r IntRangeRule) Check(value interface{}) error {
	n, ok := value.(int)
	if !ok {
		return fmt.Errorf("expected an integer value")
	}
	if n < r.Min || n > r.Max {
		return fmt.Errorf("must be between %d and %d", r.Min, r.Max)
	}
	return nil
}

// UTCTimeRule validates that a timestamp is present and expressed in UTC
type UTCTimeRule struct{}

// Check performs validation
func (r UTCTimeRule) Check(value interface{}) error {
	t, ok := value.(time.Time)
	if !ok {
		return fmt.Errorf("expected a timestamp value")
	}
	if t.IsZero() {
		return fmt.Errorf("is required")
	}
	if t.Location() != time.UTC {
		return fmt.Errorf("must be in UTC")
	}
	return nil
}

// RuleSet is a declarative {field: constraint} table evaluated before the
// workflow runs.
type RuleSet map[string]Rule

// Entity rule tables
var (
	FacultyRules = RuleSet{
		"name": StringRule{MinLen: NameMinLength, MaxLen: NameMaxLength},
	}

	UserRules = RuleSet{
		"firstName": StringRule{MinLen: 1, MaxLen: NameMaxLength},
		"lastName":  StringRule{MinLen: 1, MaxLen: NameMaxLength},
	}

	CourseRules = RuleSet{
		"name":        StringRule{MinLen: NameMinLength, MaxLen: NameMaxLength},
		"maxStudents": IntRangeRule{Min: MaxStudentsMin, Max: MaxStudentsMax},
		"startAt":     UTCTimeRule{},
		"finishAt":    UTCTimeRule{},
	}

	EnrollmentRules = RuleSet{
		"rating": IntRangeRule{Min: RatingMin, Max: RatingMax},
		"joinAt": UTCTimeRule{},
		"endAt":  UTCTimeRule{},
	}
)

// FieldError describes a single failed constraint
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e FieldError) Error() string {
	return e.Field + " " + e.Message
}

// Apply evaluates every rule in the set against the supplied field values and
// returns one error per failed constraint. Fields missing from values are
// skipped.
func Apply(rules RuleSet, values map[string]interface{}) []FieldError {
	var failed []FieldError
	for field, rule := range rules {
		value, ok := values[field]
		if !ok {
			continue
		}
		if err := rule.Check(value); err != nil {
			failed = append(failed, FieldError{Field: field, Message: err.Error()})
		}
	}
	return failed
}
