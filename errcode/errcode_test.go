package errcode

import (
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	cause := errors.New("nack")
	cases := []struct {
		err  error
		want Code
	}{
		{nil, OK},
		{StoreRead, StoreRead},
		{&E{C: StoreVerify, Op: "save"}, StoreVerify},
		{Wrap(StoreWrite, "save", cause), StoreWrite},
		{cause, Error},
	}
	for i, c := range cases {
		if got := Of(c.err); got != c.want {
			t.Fatalf("case %d: Of()=%q want %q", i, got, c.want)
		}
	}
}

func TestWrap_NilAndUnwrap(t *testing.T) {
	if Wrap(StoreWrite, "save", nil) != nil {
		t.Fatalf("Wrap(nil) should be nil")
	}
	cause := errors.New("nack")
	err := Wrap(StoreWrite, "save", cause)
	if !errors.Is(err, cause) {
		t.Fatalf("wrapped error lost its cause")
	}
	if got := err.Error(); got != "save: store_write: nack" {
		t.Fatalf("Error()=%q", got)
	}
}
