package vb6

import "testing"

func TestStreamPeekShortRead(t *testing.T) {
	s := NewSourceStream("t.bas", "ab")
	if got := s.Peek(5); got != "ab" {
		t.Errorf("Peek(5): got %q, want %q", got, "ab")
	}
	if got := s.Peek(0); got != "" {
		t.Errorf("Peek(0): got %q, want empty", got)
	}
	s.Forward(2)
	if got := s.Peek(1); got != "" {
		t.Errorf("Peek at end: got %q, want empty", got)
	}
}

func TestStreamForwardSaturates(t *testing.T) {
	s := NewSourceStream("t.bas", "abc")
	s.Forward(100)
	if !s.IsEmpty() {
		t.Error("stream should be empty after overshooting Forward")
	}
	if s.Offset() != 3 {
		t.Errorf("offset: got %d, want 3", s.Offset())
	}
	s.Forward(1)
	if s.Offset() != 3 {
		t.Errorf("offset after Forward at end: got %d, want 3", s.Offset())
	}
}

func TestStreamPeekText(t *testing.T) {
	tests := []struct {
		input   string
		pattern string
		cmp     Comparator
		want    bool
	}{
		{"Dim x", "Dim", CaseSensitive, true},
		{"Dim x", "dim", CaseSensitive, false},
		{"DIM x", "dim", CaseInsensitive, true},
		{"dim x", "DIM", CaseInsensitive, true},
		{"Di", "Dim", CaseInsensitive, false},
		{"", "x", CaseInsensitive, false},
		{"Rem note", "rEm", CaseInsensitive, true},
	}

	for _, tt := range tests {
		t.Run(tt.input+"/"+tt.pattern, func(t *testing.T) {
			s := NewSourceStream("t.bas", tt.input)
			if got := s.PeekText(tt.pattern, tt.cmp); got != tt.want {
				t.Errorf("PeekText(%q): got %v, want %v", tt.pattern, got, tt.want)
			}
			if s.Offset() != 0 {
				t.Errorf("PeekText moved the cursor to %d", s.Offset())
			}
		})
	}
}

func TestStreamTake(t *testing.T) {
	s := NewSourceStream("t.bas", "PRINT 1")
	text, ok := s.Take("print", CaseInsensitive)
	if !ok || text != "PRINT" {
		t.Fatalf("Take: got %q, %v", text, ok)
	}
	if s.Offset() != 5 {
		t.Errorf("offset after Take: got %d, want 5", s.Offset())
	}
	if _, ok := s.Take("print", CaseInsensitive); ok {
		t.Error("second Take should fail")
	}
}

func TestStreamTakeWhile(t *testing.T) {
	s := NewSourceStream("t.bas", "abc123")
	letters := s.TakeWhile(func(b byte) bool { return b >= 'a' && b <= 'z' })
	if letters != "abc" {
		t.Errorf("TakeWhile: got %q, want %q", letters, "abc")
	}
	digits := s.TakeWhile(func(b byte) bool { return b >= '0' && b <= '9' })
	if digits != "123" {
		t.Errorf("TakeWhile: got %q, want %q", digits, "123")
	}
	if !s.IsEmpty() {
		t.Error("stream should be empty")
	}
}

func TestStreamNewlines(t *testing.T) {
	s := NewSourceStream("t.bas", "\r\nx\ny")
	nl, ok := s.TakeNewline()
	if !ok || nl != "\r\n" {
		t.Fatalf("TakeNewline: got %q, %v", nl, ok)
	}
	if got := s.TakeUntilNewline(); got != "x" {
		t.Errorf("TakeUntilNewline: got %q, want %q", got, "x")
	}
	nl, ok = s.TakeNewline()
	if !ok || nl != "\n" {
		t.Fatalf("TakeNewline: got %q, %v", nl, ok)
	}
	if got := s.TakeUntilNewline(); got != "y" {
		t.Errorf("TakeUntilNewline at end: got %q, want %q", got, "y")
	}
	if _, ok := s.TakeNewline(); ok {
		t.Error("TakeNewline at end should fail")
	}
}
