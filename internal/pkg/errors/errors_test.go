package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without wrapped error",
			err:  New("CONFIG_INVALID", "locales.dir: must not be empty"),
			want: "CONFIG_INVALID: locales.dir: must not be empty",
		},
		{
			name: "with wrapped error",
			err:  Wrap(fmt.Errorf("permission denied"), "SOURCE_SCAN_FAILED", "walk source tree"),
			want: "SOURCE_SCAN_FAILED: walk source tree: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap(inner, "CODE", "msg")

	if !errors.Is(appErr, inner) {
		t.Error("errors.Is should match inner error")
	}
}

func TestIsAppError(t *testing.T) {
	appErr := ErrReferenceMissingf("en", "/tmp/locales/en")
	wrapped := fmt.Errorf("load: %w", appErr)

	got, ok := IsAppError(wrapped)
	if !ok {
		t.Fatal("IsAppError should return true for wrapped AppError")
	}
	if got.Code != CodeReferenceMissing {
		t.Errorf("Code = %q, want %s", got.Code, CodeReferenceMissing)
	}
	if got.Params["locale"] != "en" {
		t.Errorf("Params[locale] = %v, want en", got.Params["locale"])
	}
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("reference missing error should wrap ErrNotFound")
	}
}

func TestHasCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
		want bool
	}{
		{"matching code", ErrUnsupportedFormatf("xml"), CodeUnsupportedFormat, true},
		{"different code", ErrConfigInvalidf("report.max_examples", "must be positive"), CodeUnsupportedFormat, false},
		{"plain error", fmt.Errorf("boom"), CodeConfigInvalid, false},
		{"nil error", nil, CodeConfigInvalid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCode(tt.err, tt.code); got != tt.want {
				t.Errorf("HasCode() = %v, want %v", got, tt.want)
			}
		})
	}
}
