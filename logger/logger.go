/* Copyright (c) 2017 Jeffrey Massung
 *
 * This software is provided 'as-is', without any express or implied
 * warranty.  In no event will the authors be held liable for any damages
 * arising from the use of this software.
 *
 * Permission is granted to anyone to use this software for any purpose,
 * including commercial applications, and to alter it and redistribute it
 * freely, subject to the following restrictions:
 *
 * 1. The origin of this software must not be misrepresented; you must not
 *    claim that you wrote the original software. If you use this software
 *    in a product, an acknowledgment in the product documentation would be
 *    appreciated but is not required.
 *
 * 2. Altered source versions must be plainly marked as such, and must not be
 *    misrepresented as being the original software.
 *
 * 3. This notice may not be removed or altered from any source distribution.
 */

package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

/// Entry is a single line in the log.
///
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string

	// number of times the entry was logged in a row
	repeated int
}

/// String formats the entry as a single line of text.
///
func (e Entry) String() string {
	s := strings.Builder{}
	s.WriteString(e.Tag)
	s.WriteString(": ")
	s.WriteString(e.Detail)
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

/// logger is a bounded list of entries.
///
type logger struct {
	crit sync.Mutex

	// buf contains each logged entry, oldest first.
	buf []Entry

	// maximum length of buf.
	max int

	// if not nil, new entries are also written here.
	echo io.Writer
}

func newLogger(max int) *logger {
	return &logger{
		buf: make([]Entry, 0, max),
		max: max,
	}
}

func (log *logger) log(tag, detail string) {
	log.crit.Lock()
	defer log.crit.Unlock()

	// entries are always a single line
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	// collapse repeats into the previous entry
	if n := len(log.buf); n > 0 && log.buf[n-1].Tag == tag && log.buf[n-1].Detail == detail {
		log.buf[n-1].repeated++
		log.buf[n-1].Timestamp = time.Now()
		return
	}

	e := Entry{Timestamp: time.Now(), Tag: tag, Detail: detail}
	log.buf = append(log.buf, e)

	// drop the oldest entries
	if len(log.buf) > log.max {
		log.buf = append(log.buf[:0], log.buf[len(log.buf)-log.max:]...)
	}

	if log.echo != nil {
		io.WriteString(log.echo, e.String())
	}
}

func (log *logger) clear() {
	log.crit.Lock()
	defer log.crit.Unlock()
	log.buf = log.buf[:0]
}

func (log *logger) write(output io.Writer) {
	log.tail(output, log.max)
}

/// tail writes the last n entries.
///
func (log *logger) tail(output io.Writer, n int) {
	log.crit.Lock()
	defer log.crit.Unlock()

	// don't go past the beginning
	start := len(log.buf) - n
	if start < 0 {
		start = 0
	}

	for _, e := range log.buf[start:] {
		io.WriteString(output, e.String())
	}
}

func (log *logger) setEcho(output io.Writer) {
	log.crit.Lock()
	defer log.crit.Unlock()
	log.echo = output
}
