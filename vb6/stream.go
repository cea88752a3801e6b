package vb6

import "strings"

// Comparator selects how PeekText and Take match text against the stream.
type Comparator int

const (
	CaseSensitive Comparator = iota
	CaseInsensitive
)

// SourceStream is a forward-only cursor over decoded source text. The offset
// never moves backward and never exceeds the text length; every read past the
// end is a short read, not an error.
type SourceStream struct {
	fileName string
	contents string
	offset   int
}

// NewSourceStream returns a stream positioned at the start of contents.
func NewSourceStream(fileName, contents string) *SourceStream {
	return &SourceStream{fileName: fileName, contents: contents}
}

// FileName returns the name the stream was created with. It is used only for
// diagnostics.
func (s *SourceStream) FileName() string { return s.fileName }

// Offset returns the current byte offset into the contents.
func (s *SourceStream) Offset() int { return s.offset }

// Contents returns the full underlying text.
func (s *SourceStream) Contents() string { return s.contents }

// IsEmpty reports whether the cursor has reached the end of the contents.
func (s *SourceStream) IsEmpty() bool { return s.offset >= len(s.contents) }

// Forward advances the offset by count bytes, saturating at the end of the
// contents. Advancing past the end is a no-op, not an error.
func (s *SourceStream) Forward(count int) {
	if count <= 0 {
		return
	}
	s.offset += count
	if s.offset > len(s.contents) {
		s.offset = len(s.contents)
	}
}

// Peek returns up to count bytes starting at the current offset without
// advancing. Near the end of input it returns fewer bytes than requested.
func (s *SourceStream) Peek(count int) string {
	if count <= 0 || s.IsEmpty() {
		return ""
	}
	end := s.offset + count
	if end > len(s.contents) {
		end = len(s.contents)
	}
	return s.contents[s.offset:end]
}

func matches(a, b string, cmp Comparator) bool {
	if cmp == CaseInsensitive {
		return strings.EqualFold(a, b)
	}
	return a == b
}

// PeekText reports whether the text at the current offset matches pattern
// under the given comparator, without advancing. CaseInsensitive uses
// locale-independent ASCII folding, matching VB6's case-insensitive keyword
// rules.
func (s *SourceStream) PeekText(pattern string, cmp Comparator) bool {
	got := s.Peek(len(pattern))
	return len(got) == len(pattern) && matches(got, pattern, cmp)
}

// Take consumes pattern from the stream if it matches at the current offset
// and returns the consumed text, or "" with ok=false if it does not match.
func (s *SourceStream) Take(pattern string, cmp Comparator) (string, bool) {
	if !s.PeekText(pattern, cmp) {
		return "", false
	}
	text := s.contents[s.offset : s.offset+len(pattern)]
	s.offset += len(pattern)
	return text, true
}

// TakeCount consumes up to count bytes and returns them. At the end of input
// it returns whatever remains.
func (s *SourceStream) TakeCount(count int) string {
	text := s.Peek(count)
	s.offset += len(text)
	return text
}

// TakeWhile consumes the maximal run of bytes satisfying pred and returns it.
func (s *SourceStream) TakeWhile(pred func(byte) bool) string {
	end := s.offset
	for end < len(s.contents) && pred(s.contents[end]) {
		end++
	}
	text := s.contents[s.offset:end]
	s.offset = end
	return text
}

// PeekNewline returns the newline sequence at the current offset, either
// "\r\n" or "\n", or "" if the stream is not at a newline.
func (s *SourceStream) PeekNewline() string {
	if s.PeekText("\r\n", CaseSensitive) {
		return "\r\n"
	}
	if s.PeekText("\n", CaseSensitive) {
		return "\n"
	}
	return ""
}

// TakeNewline consumes a newline sequence if present and returns it.
func (s *SourceStream) TakeNewline() (string, bool) {
	nl := s.PeekNewline()
	if nl == "" {
		return "", false
	}
	s.offset += len(nl)
	return nl, true
}

// TakeUntilNewline consumes everything up to, but not including, the next
// newline (or end of input) and returns it.
func (s *SourceStream) TakeUntilNewline() string {
	end := s.offset
	for end < len(s.contents) && s.contents[end] != '\n' && s.contents[end] != '\r' {
		end++
	}
	text := s.contents[s.offset:end]
	s.offset = end
	return text
}
