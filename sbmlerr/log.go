package sbmlerr

// Log is the append-only diagnostic log of one document.
//
// Readers take a mark (Len) before checking an element's attributes and
// rewrite only the entries appended after it, so a Log must not be shared
// by concurrent readers.
type Log struct {
	errs []*Error
}

// NewLog returns an empty Log
func NewLog() *Log { return &Log{} }

// Add appends errs to the log, skipping nils, and returns the number added.
func (l *Log) Add(errs ...*Error) (added int) {
	for _, err := range errs {
		if err != nil {
			l.errs = append(l.errs, err)
			added++
		}
	}
	return added
}

// Report creates a diagnostic for code and appends it.
func (l *Log) Report(code Code, opts ...Option) *Error {
	e := New(code, opts...)
	l.errs = append(l.errs, e)
	return e
}

// Len returns the number of diagnostics in the log.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	return len(l.errs)
}

// At returns the i'th diagnostic, or nil if i is out of range.
func (l *Log) At(i int) *Error {
	if l == nil || i < 0 || i >= len(l.errs) {
		return nil
	}
	return l.errs[i]
}

// Errors returns a copy of all diagnostics in the log.
func (l *Log) Errors() []*Error { return l.Since(0) }

// Since returns a copy of the diagnostics appended at or after mark.
func (l *Log) Since(mark int) []*Error {
	if l == nil || mark >= len(l.errs) {
		return nil
	}
	if mark < 0 {
		mark = 0
	}
	out := make([]*Error, len(l.errs)-mark)
	copy(out, l.errs[mark:])
	return out
}

// Reclassify rewrites diagnostics appended at or after mark whose code is
// one of from, giving them code to and its table metadata. Position and
// message detail are kept. Returns the number of diagnostics rewritten.
func (l *Log) Reclassify(mark int, to Code, from ...Code) (n int) {
	if l == nil || to == 0 {
		return 0
	}
	if mark < 0 {
		mark = 0
	}
	for i := mark; i < len(l.errs); i++ {
		e := l.errs[i]
		for _, code := range from {
			if e.Code != code {
				continue
			}
			re := New(to, WithPosition(e.Line, e.Column), WithMessage(e.Message))
			if re.Message == "" {
				re.Message = e.ShortMessage
			}
			l.errs[i] = re
			n++
			break
		}
	}
	return n
}

// Count returns the number of diagnostics with the given code.
func (l *Log) Count(code Code) (n int) {
	if l == nil {
		return 0
	}
	for _, e := range l.errs {
		if e.Code == code {
			n++
		}
	}
	return n
}

// Contains returns true if any diagnostic has the given code.
func (l *Log) Contains(code Code) bool { return l.Count(code) > 0 }

// CountSeverity returns the number of diagnostics at or above min.
func (l *Log) CountSeverity(min Severity) (n int) {
	if l == nil {
		return 0
	}
	for _, e := range l.errs {
		if e.Severity >= min {
			n++
		}
	}
	return n
}

// Clear removes all diagnostics.
func (l *Log) Clear() { l.errs = nil }
