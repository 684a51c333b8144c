// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/sogladev/mpqbuild/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "staging_not_found_error",
			code:    errors.ErrStagingNotFound,
			message: "staging area not found",
			wantStr: "[STAGING_NOT_FOUND] staging area not found",
		},
		{
			name:    "tool_not_found_error",
			code:    errors.ErrToolNotFound,
			message: "mpqcli not found in PATH",
			wantStr: "[TOOL_NOT_FOUND] mpqcli not found in PATH",
		},
		{
			name:    "config_invalid_error",
			code:    errors.ErrConfigInvalid,
			message: "invalid compression",
			wantStr: "[CONFIG_INVALID] invalid compression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrPackaging, "mpqcli failed")

		if err.Code != errors.ErrPackaging {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrPackaging)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[PACKAGING] mpqcli failed: base error"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}

		if !stderrors.Is(err, baseErr) {
			t.Error("errors.Is should find the wrapped error")
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		err := errors.Wrap(nil, errors.ErrPackaging, "mpqcli failed")
		if err != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrValidation, "invalid members").
		WithDetail("archive", "patch-4.mpq").
		WithDetail("invalid", []string{"BadFolder/y.txt"})

	if err.Details["archive"] != "patch-4.mpq" {
		t.Errorf("Details[archive] = %v, want patch-4.mpq", err.Details["archive"])
	}

	invalid, ok := err.Details["invalid"].([]string)
	if !ok || len(invalid) != 1 {
		t.Errorf("Details[invalid] = %v, want one entry", err.Details["invalid"])
	}
}

func TestIsErrorCode(t *testing.T) {
	err := errors.New(errors.ErrToolNotFound, "mpqcli not found")

	if !errors.IsErrorCode(err, errors.ErrToolNotFound) {
		t.Error("IsErrorCode should match the error's own code")
	}

	if errors.IsErrorCode(err, errors.ErrPackaging) {
		t.Error("IsErrorCode should not match a different code")
	}

	if errors.IsErrorCode(stderrors.New("plain"), errors.ErrToolNotFound) {
		t.Error("IsErrorCode should not match a plain error")
	}
}

func TestGetErrorCode(t *testing.T) {
	t.Run("mpq_error", func(t *testing.T) {
		err := errors.Newf(errors.ErrDuplicatePath, "duplicate logical path %q", "Fonts/a.ttf")
		if got := errors.GetErrorCode(err); got != errors.ErrDuplicatePath {
			t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrDuplicatePath)
		}
	})

	t.Run("plain_error", func(t *testing.T) {
		if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
			t.Errorf("GetErrorCode() = %v, want %v", got, errors.ErrUnknown)
		}
	})
}

func TestIs_MatchesByCode(t *testing.T) {
	a := errors.New(errors.ErrValidation, "one message")
	b := errors.New(errors.ErrValidation, "another message")

	if !stderrors.Is(a, b) {
		t.Error("two MPQErrors with the same code should satisfy errors.Is")
	}
}
