package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessageIncludesContext(t *testing.T) {
	err := New(ErrCodeBadStatus, "unexpected status 503").
		WithContext("status", 503)

	msg := err.Error()
	if msg == "" {
		t.Fatal("empty error message")
	}
	if got := GetCode(err); got != ErrCodeBadStatus {
		t.Errorf("GetCode = %q", got)
	}
}

func TestWrapPreservesUnderlying(t *testing.T) {
	inner := errors.New("connection refused")
	err := Wrap(inner, ErrCodeTransport, "request failed").WithRetryable(true)

	if !errors.Is(err, inner) {
		t.Error("wrapped error lost underlying cause")
	}
	if !IsRetryable(err) {
		t.Error("retryable flag lost")
	}
}

func TestGetCodeWalksWrapChain(t *testing.T) {
	inner := New(ErrCodeValidation, "missing field")
	outer := fmt.Errorf("submitting: %w", inner)

	if got := GetCode(outer); got != ErrCodeValidation {
		t.Errorf("GetCode through fmt wrap = %q", got)
	}
	if !IsCode(outer, ErrCodeValidation) {
		t.Error("IsCode through fmt wrap = false")
	}
}

func TestGetCodeUnknownError(t *testing.T) {
	if got := GetCode(errors.New("plain")); got != ErrCodeInternal {
		t.Errorf("GetCode(plain error) = %q", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %q", got)
	}
}

func TestIsTransport(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeTransport, true},
		{ErrCodeBadStatus, true},
		{ErrCodeDecode, true},
		{ErrCodeValidation, false},
		{ErrCodeConfigInvalid, false},
	}
	for _, tc := range cases {
		if got := IsTransport(New(tc.code, "x")); got != tc.want {
			t.Errorf("IsTransport(%s) = %v, want %v", tc.code, got, tc.want)
		}
	}
}
