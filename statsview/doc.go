// Package statsview serves live runtime statistics (memory, goroutines, GC)
// over HTTP while the emulator runs. It is only available when built with
// the statsview build tag:
//
//	go build -tags statsview
//
// Without the tag, Available() returns false and Launch() does nothing.
package statsview
