package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		kind    *Error
		err     error
		wantHit bool
	}{
		"instance of the same root error": {
			kind:    ErrNotFound,
			err:     ErrNotFound,
			wantHit: true,
		},
		"wrapped instance of the root error": {
			kind:    ErrNotFound,
			err:     Wrap(ErrNotFound, "gone"),
			wantHit: true,
		},
		"deeply wrapped instance": {
			kind:    ErrNotFound,
			err:     Wrap(Wrap(ErrNotFound, "gone"), "really gone"),
			wantHit: true,
		},
		"different root error": {
			kind:    ErrNotFound,
			err:     ErrUnauthorized,
			wantHit: false,
		},
		"stdlib error": {
			kind:    ErrNotFound,
			err:     stderrors.New("not found"),
			wantHit: false,
		},
		"nil error with non-nil kind": {
			kind:    ErrNotFound,
			err:     nil,
			wantHit: false,
		},
		"nil error with nil kind": {
			kind:    nil,
			err:     nil,
			wantHit: true,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := tc.kind.Is(tc.err); got != tc.wantHit {
				t.Fatalf("want %v, got %v", tc.wantHit, got)
			}
		})
	}
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, "whatever"); err != nil {
		t.Fatalf("wrapping nil must return nil, got %+v", err)
	}
}

func TestWrappedErrorMessage(t *testing.T) {
	err := Wrap(ErrNotFound, "my entity")
	const want = "my entity: not found"
	if got := err.Error(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestErrorCode(t *testing.T) {
	err := Wrap(ErrUnauthorized, "no key")
	c, ok := err.(interface{ Code() uint32 })
	if !ok {
		t.Fatal("wrapped error must expose a code")
	}
	if got := c.Code(); got != ErrUnauthorized.Code() {
		t.Fatalf("want code %d, got %d", ErrUnauthorized.Code(), got)
	}

	// Another layer of wrapping must not lose the code either.
	err = Wrap(err, "outer")
	if got := err.(interface{ Code() uint32 }).Code(); got != ErrUnauthorized.Code() {
		t.Fatalf("want code %d, got %d", ErrUnauthorized.Code(), got)
	}

	// Errors not registered with this package are internal.
	err = Wrap(stderrors.New("std"), "ctx")
	if got := err.(interface{ Code() uint32 }).Code(); got != CodeInternalErr {
		t.Fatalf("want internal code, got %d", got)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("reusing an error code must panic")
		}
	}()
	Register(ErrNotFound.Code(), "duplicate of not found")
}

func TestRedact(t *testing.T) {
	err := NormalizePanic(fmt.Errorf("boom"))
	if !ErrPanic.Is(err) {
		t.Fatalf("normalized panic must be a panic error: %+v", err)
	}
	redacted := Redact(err)
	if ErrPanic.Is(redacted) {
		t.Fatal("redacted error must not reveal panic details")
	}
}
