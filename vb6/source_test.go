package vb6

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeWithReplacement(t *testing.T) {
	tests := []struct {
		name         string
		input        []byte
		want         string
		replacements int
	}{
		{"ascii", []byte("Dim x As Long"), "Dim x As Long", 0},
		{"empty", []byte{}, "", 0},
		{"accented", []byte{'c', 'a', 'f', 0xE9}, "café", 0},
		{"smart quotes", []byte{0x93, 'h', 'i', 0x94}, "“hi”", 0},
		{"unmapped byte", []byte{'a', 0x81, 'b'}, "a�b", 1},
		{"several unmapped", []byte{0x81, 0x8D, 0x9D}, "���", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := DecodeWithReplacement("test.bas", tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if file.Content != tt.want {
				t.Errorf("content: got %q, want %q", file.Content, tt.want)
			}
			if file.Replacements != tt.replacements {
				t.Errorf("replacements: got %d, want %d", file.Replacements, tt.replacements)
			}
		})
	}
}

func TestDecodeStrict(t *testing.T) {
	if _, err := Decode("ok.bas", []byte("Print \"hello\"")); err != nil {
		t.Fatalf("unexpected error for clean input: %v", err)
	}

	_, err := Decode("bad.bas", []byte{'O', 'K', 0x90, 'x'})
	if err == nil {
		t.Fatal("expected error for unmapped byte")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	if decodeErr.Offset != 2 {
		t.Errorf("offset: got %d, want 2", decodeErr.Offset)
	}
	if decodeErr.FileName != "bad.bas" {
		t.Errorf("file name: got %q, want %q", decodeErr.FileName, "bad.bas")
	}
	if !strings.Contains(decodeErr.Error(), "0x90") {
		t.Errorf("error message should name the byte: %q", decodeErr.Error())
	}
}

func TestFromString(t *testing.T) {
	file := FromString("mod.bas", "Dim x\r\n")
	if file.FileName != "mod.bas" {
		t.Errorf("file name: got %q", file.FileName)
	}
	stream := file.Stream()
	if stream.FileName() != "mod.bas" {
		t.Errorf("stream file name: got %q", stream.FileName())
	}
	if stream.Contents() != "Dim x\r\n" {
		t.Errorf("stream contents: got %q", stream.Contents())
	}
}
