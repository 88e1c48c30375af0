package logger_test

import (
	"fmt"
	"testing"

	"github.com/kestrel-emu/chip8/logger"
	"github.com/kestrel-emu/chip8/test"
)

type deny struct{}

func (deny) AllowLogging() bool { return false }

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.ExpectEquality(t, tw.Compare(""), true)

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\n")

	tw.Clear()
	logger.Logf(logger.Allow, "test2", "this is test %d", 2)
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is test 2\n")

	// too many entries in a Tail() is fine
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectEquality(t, tw.String(), "test: this is a test\ntest2: this is test 2\n")

	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "test2: this is test 2\n")

	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectEquality(t, tw.String(), "")
}

func TestRepeatsAndPermission(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log(logger.Allow, "tag", "same")
	logger.Log(logger.Allow, "tag", "same")
	logger.Log(logger.Allow, "tag", "same")
	logger.Log(deny{}, "tag", "denied")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "tag: same (repeat x3)\n")
}

func TestBounded(t *testing.T) {
	logger.Clear()
	for i := 0; i < 300; i++ {
		logger.Logf(logger.Allow, "n", "%d", i)
	}

	tw := &test.CompareWriter{}
	logger.Tail(tw, 1)
	test.ExpectEquality(t, tw.String(), "n: 299\n")

	// oldest entries have been dropped
	tw.Clear()
	logger.Write(tw)
	test.ExpectEquality(t, tw.String()[:len("n: 44\n")], fmt.Sprintf("n: %d\n", 300-256))
}

func TestEcho(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}
	logger.SetEcho(tw)
	defer logger.SetEcho(nil)

	logger.Log(logger.Allow, "echo", "hello")
	test.ExpectEquality(t, tw.String(), "echo: hello\n")
}
