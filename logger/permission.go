package logger

/// Permission implementations decide whether a log request is allowed to
/// create a new entry. Used to keep high volume logging (instruction tracing)
/// out of the log unless it was asked for.
///
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

/// Allow is a Permission that always allows logging.
///
var Allow Permission = allow{}
