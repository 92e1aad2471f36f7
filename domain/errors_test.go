package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", E(KindValidation, "missing email"), KindValidation},
		{"authentication sentinel", ErrInvalidCredentials, KindAuthentication},
		{"conflict sentinel", ErrEmailTaken, KindConflict},
		{"wrapped keeps kind", fmt.Errorf("outer: %w", ErrTaskNotFound), KindNotFound},
		{"plain error is internal", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsOperational(t *testing.T) {
	if IsOperational(errors.New("boom")) {
		t.Error("plain errors are not operational")
	}
	if !IsOperational(ErrForbidden) {
		t.Error("sentinels are operational")
	}
	if !IsOperational(fmt.Errorf("outer: %w", ErrUserNotFound)) {
		t.Error("wrapping must not hide the operational error")
	}
}

func TestWrap_Unwrap(t *testing.T) {
	cause := errors.New("smtp dial failed")
	err := Wrap(KindDelivery, "email delivery failed", cause)

	if !errors.Is(err, cause) {
		t.Error("wrapped cause should be reachable via errors.Is")
	}
	if KindOf(err) != KindDelivery {
		t.Errorf("KindOf() = %v, want KindDelivery", KindOf(err))
	}
}
