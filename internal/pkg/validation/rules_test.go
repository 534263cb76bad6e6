package validation

import (
	"strings"
	"testing"
	"time"
)

func TestStringRule(t *testing.T) {
	rule := StringRule{MinLen: 3, MaxLen: 10}

	if err := rule.Check("abc"); err != nil {
		t.Fatalf("min length string rejected: %v", err)
	}
	if err := rule.Check("ab"); err == nil {
		t.Fatalf("too-short string accepted")
	}
	if err := rule.Check(strings.Repeat("x", 11)); err == nil {
		t.Fatalf("too-long string accepted")
	}
	if err := rule.Check(42); err == nil {
		t.Fatalf("non-string value accepted")
	}
}

func TestIntRangeRule(t *testing.T) {
	rule := IntRangeRule{Min: 0, Max: 100}

	for _, n := range []int{0, 50, 100} {
		if err := rule.Check(n); err != nil {
			t.Fatalf("in-range value %d rejected: %v", n, err)
		}
	}
	for _, n := range []int{-1, 101} {
		if err := rule.Check(n); err == nil {
			t.Fatalf("out-of-range value %d accepted", n)
		}
	}
}

func TestUTCTimeRule(t *testing.T) {
	rule := UTCTimeRule{}

	if err := rule.Check(time.Now().UTC()); err != nil {
		t.Fatalf("UTC timestamp rejected: %v", err)
	}
	if err := rule.Check(time.Time{}); err == nil {
		t.Fatalf("zero timestamp accepted")
	}

	loc := time.FixedZone("UTC+3", 3*3600)
	if err := rule.Check(time.Now().In(loc)); err == nil {
		t.Fatalf("non-UTC timestamp accepted")
	}
}

func TestApply(t *testing.T) {
	failed := Apply(CourseRules, map[string]interface{}{
		"name":        "ab",
		"maxStudents": 101,
		"startAt":     time.Now().UTC(),
		"finishAt":    time.Now().UTC().Add(time.Hour),
	})
	if len(failed) != 2 {
		t.Fatalf("expected 2 failures, got %d: %v", len(failed), failed)
	}

	// Fields missing from the value map are skipped, not failed
	failed = Apply(EnrollmentRules, map[string]interface{}{
		"rating": 50,
	})
	if len(failed) != 0 {
		t.Fatalf("expected no failures for valid partial input, got %v", failed)
	}
}
