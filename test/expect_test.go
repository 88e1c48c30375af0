package test_test

import (
	"errors"
	"testing"

	"github.com/kestrel-emu/chip8/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, true, !false)
	test.ExpectInequality(t, 11, 5+5)
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, tw.Compare(""), true)

	tw.Write([]byte("hello "))
	tw.Write([]byte("world"))
	test.ExpectEquality(t, tw.Compare("hello world"), true)
	test.ExpectEquality(t, tw.String(), "hello world")

	tw.Clear()
	test.ExpectEquality(t, tw.Compare(""), true)
}
