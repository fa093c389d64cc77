package diag

import (
	"errors"
	"sort"
)

// Level is the severity of an entry in a List.
type Level int

const (
	LevelError Level = iota
	LevelWarning
)

// Entry is one reported problem.
type Entry struct {
	Level Level
	Err   *Error
}

// List accumulates the problems of one load. The zero value is ready to use.
type List struct {
	entries []Entry
}

// Add records err as an error entry. Errors that are not *Error are wrapped
// with CodeUnknown at line 0 so nothing is dropped.
func (l *List) Add(err error) {
	if err == nil {
		return
	}
	var de *Error
	if !errors.As(err, &de) {
		de = &Error{Code: CodeUnknown, Msg: err.Error()}
	}
	l.entries = append(l.entries, Entry{Level: LevelError, Err: de})
}

// Warn records a warning entry.
func (l *List) Warn(e *Error) {
	l.entries = append(l.entries, Entry{Level: LevelWarning, Err: e})
}

// Entries returns every recorded entry in report order.
func (l *List) Entries() []Entry {
	return l.entries
}

// Errors returns only the error-level entries.
func (l *List) Errors() []*Error {
	var out []*Error
	for _, e := range l.entries {
		if e.Level == LevelError {
			out = append(out, e.Err)
		}
	}
	return out
}

// Warnings returns only the warning-level entries.
func (l *List) Warnings() []*Error {
	var out []*Error
	for _, e := range l.entries {
		if e.Level == LevelWarning {
			out = append(out, e.Err)
		}
	}
	return out
}

// HasErrors reports whether at least one error-level entry was recorded.
func (l *List) HasErrors() bool {
	for _, e := range l.entries {
		if e.Level == LevelError {
			return true
		}
	}
	return false
}

// Len is the number of entries of any level.
func (l *List) Len() int {
	return len(l.entries)
}

// Err joins all error-level entries, or returns nil when there are none.
func (l *List) Err() error {
	errs := l.Errors()
	if len(errs) == 0 {
		return nil
	}
	joined := make([]error, len(errs))
	for i, e := range errs {
		joined[i] = e
	}
	return errors.Join(joined...)
}

// SortByLine orders the entries by source line, keeping report order for
// entries on the same line.
func (l *List) SortByLine() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Err.Line < l.entries[j].Err.Line
	})
}
