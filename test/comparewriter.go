package test

/// CompareWriter is an implementation of the io.Writer interface. It should be
/// used to capture output and to compare with predefined strings.
///
type CompareWriter struct {
	buffer []byte
}

func (tw *CompareWriter) Write(p []byte) (n int, err error) {
	tw.buffer = append(tw.buffer, p...)
	return len(p), nil
}

/// Clear empties the buffer.
///
func (tw *CompareWriter) Clear() {
	tw.buffer = tw.buffer[:0]
}

/// Compare buffered output with predefined/example string.
///
func (tw *CompareWriter) Compare(s string) bool {
	return s == string(tw.buffer)
}

/// String implements the Stringer interface.
///
func (tw *CompareWriter) String() string {
	return string(tw.buffer)
}
