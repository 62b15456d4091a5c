package testutil

import (
	"errors"
	"testing"

	apperrors "stockdex/internal/errors"
)

// AssertAppError fails unless err unwraps to an *AppError carrying wantCode.
func AssertAppError(t *testing.T, err error, wantCode string) {
	t.Helper()

	if err == nil {
		t.Fatalf("wanted AppError %q, got nil", wantCode)
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("wanted *AppError, got %T: %v", err, err)
	}

	if appErr.Code != wantCode {
		t.Errorf("wanted error code %q, got %q (message: %s)", wantCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test on any error.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
