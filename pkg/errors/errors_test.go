package errors_test

import (
	"fmt"
	"testing"

	"github.com/vela-lang/vela/pkg/errors"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		err      error
		expected errors.Kind
	}{
		{errors.NewTypeError("bad"), errors.KindType},
		{errors.NewIndexError("oob"), errors.KindIndex},
		{errors.NewArgumentError("argc"), errors.KindArgument},
		{errors.NewSerializationError("null"), errors.KindSerialization},
		{errors.NewHostIOError("read", fmt.Errorf("no such file")), errors.KindHostIO},
		{errors.NewRegistrationError("dup"), errors.KindRegistration},
		{fmt.Errorf("plain"), ""},
		{fmt.Errorf("wrapped: %w", errors.NewTypeError("inner")), errors.KindType},
	}

	for i, tt := range tests {
		if got := errors.KindOf(tt.err); got != tt.expected {
			t.Errorf("test %d: KindOf = %q, want %q", i, got, tt.expected)
		}
	}
}

func TestHostIOErrorCarriesCause(t *testing.T) {
	cause := fmt.Errorf("permission denied")
	err := errors.NewHostIOError("file.write_text", cause)

	if err.Unwrap() != cause {
		t.Error("cause not carried")
	}
	want := "HostIOError: file.write_text: permission denied"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
