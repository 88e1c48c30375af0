package logger

import (
	"fmt"
	"io"
)

/// only one log for the entire application.
///
var central *logger

/// maximum number of entries in the central log.
///
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

/// Log adds an entry to the central log.
///
func Log(perm Permission, tag, detail string) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, detail)
	}
}

/// Logf adds a formatted entry to the central log. The arguments are not
/// formatted unless the entry is allowed.
///
func Logf(perm Permission, tag, detail string, args ...interface{}) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, fmt.Sprintf(detail, args...))
	}
}

/// Clear all entries from the central log.
///
func Clear() {
	central.clear()
}

/// Write the contents of the central log to io.Writer.
///
func Write(output io.Writer) {
	central.write(output)
}

/// Tail writes the last N entries to io.Writer.
///
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

/// SetEcho writes every new entry to io.Writer as well as adding it to the
/// log. A nil writer turns echoing off.
///
func SetEcho(output io.Writer) {
	central.setEcho(output)
}
