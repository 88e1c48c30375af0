// Package curated is a helper package for the plain Go error type. Errors
// are created with Errorf(), which takes a pattern and placeholder values just
// like fmt.Errorf(). The pattern is remembered and is what identifies the
// error later on:
//
//	const StackOverflow = "stack overflow: call depth %d"
//
//	err := curated.Errorf(StackOverflow, 16)
//	if curated.Is(err, StackOverflow) {
//		...
//	}
//
// Has() answers the same question for an error that has been wrapped inside
// another curated error, for example:
//
//	f := curated.Errorf("chip8: %03X: %v", 0x204, err)
//	curated.Has(f, StackOverflow) // true
//	curated.Is(f, StackOverflow)  // false
//
// Sentinel patterns should be stored as named const strings next to the code
// that produces them.
//
// The message returned by Error() is normalised so that adjacent duplicate
// parts of the chain (parts being separated by ": ") are removed. This means
// that a function wrapping an error with its own prefix need not worry whether
// a callee already added the same prefix.
package curated
