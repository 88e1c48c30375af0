// Package test contains helper functions to remove common boilerplate from
// the tests in this module.
//
// The Expect functions report a failure with t.Errorf() and allow the test to
// continue. The Demand functions are fatal and should be used when later parts
// of the test depend on the value being correct, for example checking the
// length of a slice before indexing into it.
//
// ExpectSuccess and ExpectFailure interpret their argument according to type:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The CompareWriter type implements io.Writer and can be used to capture
// output for comparison with an expected string.
package test
