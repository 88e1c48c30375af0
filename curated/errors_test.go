package curated_test

import (
	"fmt"
	"testing"

	"github.com/kestrel-emu/chip8/curated"
	"github.com/kestrel-emu/chip8/test"
)

const testError = "test error: %s"
const wrapError = "wrapped: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, curated.Is(e, testError), true)
	test.ExpectEquality(t, curated.Is(e, wrapError), false)
	test.ExpectEquality(t, e.Error(), "test error: foo")

	f := curated.Errorf(wrapError, e)
	test.ExpectEquality(t, curated.Is(f, testError), false)
	test.ExpectEquality(t, curated.Has(f, testError), true)
	test.ExpectEquality(t, curated.Has(f, wrapError), true)
}

func TestIsAny(t *testing.T) {
	test.ExpectEquality(t, curated.IsAny(nil), false)
	test.ExpectEquality(t, curated.IsAny(fmt.Errorf("plain")), false)
	test.ExpectEquality(t, curated.IsAny(curated.Errorf("curated")), true)

	// plain errors never match a pattern
	test.ExpectEquality(t, curated.Is(fmt.Errorf(testError, "foo"), testError), false)
	test.ExpectEquality(t, curated.Has(fmt.Errorf(testError, "foo"), testError), false)
}

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("error: %v", curated.Errorf("error: %v", curated.Errorf("not yet implemented")))
	test.ExpectEquality(t, e.Error(), "error: not yet implemented")
}

func TestValues(t *testing.T) {
	e := curated.Errorf("depth %d at %03X", 16, 0x204)
	v := curated.Values(e)
	test.DemandEquality(t, len(v), 2)
	test.ExpectEquality(t, v[0], interface{}(16))
	test.ExpectEquality(t, v[1], interface{}(0x204))
	test.ExpectEquality(t, len(curated.Values(fmt.Errorf("plain"))), 0)
}
