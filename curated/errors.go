package curated

import (
	"fmt"
	"strings"
)

/// curated implements the error interface. formatting is deferred until
/// Error() is called.
///
type curated struct {
	pattern string
	values  []interface{}
}

/// Errorf creates a new curated error. The first argument is called pattern
/// rather than format because it is the value compared by Is() and Has().
///
func Errorf(pattern string, values ...interface{}) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

/// Error implements the error interface.
///
func (er curated) Error() string {
	s := fmt.Errorf(er.pattern, er.values...).Error()

	p := strings.Split(s, ": ")
	n := make([]string, 0, len(p))
	for _, part := range p {
		if len(n) > 0 && n[len(n)-1] == part {
			continue
		}
		n = append(n, part)
	}

	return strings.Join(n, ": ")
}

/// Values returns the placeholder values the error was created with.
///
func Values(err error) []interface{} {
	if er, ok := err.(curated); ok {
		return er.values
	}
	return nil
}

/// IsAny checks if the error was created by Errorf().
///
func IsAny(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(curated)
	return ok
}

/// Is checks if error is a curated error created with a specific pattern.
///
func Is(err error, pattern string) bool {
	if er, ok := err.(curated); ok {
		return er.pattern == pattern
	}
	return false
}

/// Has checks if error is a curated error with a specific pattern somewhere in
/// the chain.
///
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}

	if er.pattern == pattern {
		return true
	}

	for _, v := range er.values {
		if e, ok := v.(curated); ok && Has(e, pattern) {
			return true
		}
	}

	return false
}
