//go:build !statsview
// +build !statsview

package statsview_test

import (
	"testing"

	"github.com/kestrel-emu/chip8/statsview"
	"github.com/kestrel-emu/chip8/test"
)

func TestUnavailable(t *testing.T) {
	test.ExpectEquality(t, statsview.Available(), false)

	tw := &test.CompareWriter{}
	statsview.Launch(tw)
	test.ExpectEquality(t, tw.String(), "")
}
