package middleware

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yigit/enrollhub/internal/app/models/dto"
	"github.com/yigit/enrollhub/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		err      error
		wantCode int
		wantErr  dto.ErrorCode
	}{
		{"validation", apperrors.ErrValidationFailed, 400, dto.ErrorCodeValidationFailed},
		{"faculty not found", apperrors.ErrFacultyNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"user not found", apperrors.ErrUserNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"course not found", apperrors.ErrCourseNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"enrollment not found", apperrors.ErrEnrollmentNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"faculty exists", apperrors.ErrFacultyAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"course exists", apperrors.ErrCourseAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"enrollment exists", apperrors.ErrEnrollmentAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"faculty has users", apperrors.ErrFacultyHasUsers, 409, dto.ErrorCodeResourceConflict},
		{"course full", apperrors.ErrCourseFull, 503, dto.ErrorCodeCourseFull},
		{"wrapped sentinel", errors.Join(errors.New("context"), apperrors.ErrCourseFull), 503, dto.ErrorCodeCourseFull},
		{"unknown typed", apperrors.NewUnknownError(uuid.New(), errors.New("boom")), 500, dto.ErrorCodeInternalServer},
		{"plain error", errors.New("boom"), 500, dto.ErrorCodeInternalServer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(rec)

			HandleAPIError(ctx, tc.err)

			if rec.Code != tc.wantCode {
				t.Fatalf("expected status %d, got %d", tc.wantCode, rec.Code)
			}

			var body dto.APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body.Error == nil {
				t.Fatalf("expected error detail in body")
			}
			if body.Error.Code != tc.wantErr {
				t.Fatalf("expected error code %s, got %s", tc.wantErr, body.Error.Code)
			}
		})
	}
}
