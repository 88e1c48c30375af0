// Package random provides the byte source used by the RND instruction.
//
// A Random created with a non-zero seed produces the same sequence every time
// it is created, which makes ROMs that use RND reproducible under test and
// when comparing traces.
package random
