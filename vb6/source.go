// Package vb6 provides the byte-level entry points for working with VB6
// source code: decoding raw file bytes into text and a forward-only
// character stream over the decoded result.
//
// VB6 source files are encoded in Windows-1252. Decoding never fails on
// arbitrary bytes: positions that have no mapping are substituted with
// U+FFFD and counted, so that even garbage input yields a usable text
// buffer for the tokenizer.
package vb6

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// SourceFile holds the decoded content of a single VB6 source file.
// It is immutable after creation.
type SourceFile struct {
	FileName string
	Content  string

	// Replacements is the number of bytes that could not be decoded and
	// were substituted with U+FFFD.
	Replacements int
}

// DecodeError reports that source bytes could not be decoded.
type DecodeError struct {
	FileName string
	Offset   int
	Message  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: offset %d: %s", e.FileName, e.Offset, e.Message)
}

// DecodeWithReplacement decodes Windows-1252 source bytes into a SourceFile,
// substituting U+FFFD for bytes that have no mapping. It returns an error
// only when no text could be produced at all; for ordinary inputs, including
// fuzzed garbage, it succeeds.
func DecodeWithReplacement(fileName string, src []byte) (*SourceFile, error) {
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(src)
	if err != nil {
		if len(decoded) == 0 && len(src) > 0 {
			return nil, &DecodeError{
				FileName: fileName,
				Offset:   0,
				Message:  fmt.Sprintf("cannot decode as Windows-1252: %v", err),
			}
		}
		// Partial output is still usable; keep what we have.
	}

	content := string(decoded)
	return &SourceFile{
		FileName:     fileName,
		Content:      content,
		Replacements: strings.Count(content, string(utf8.RuneError)),
	}, nil
}

// Decode is the strict variant of DecodeWithReplacement: any byte without a
// Windows-1252 mapping is an error reporting the offset of the first such
// byte.
func Decode(fileName string, src []byte) (*SourceFile, error) {
	for i, b := range src {
		if charmap.Windows1252.DecodeByte(b) == utf8.RuneError {
			return nil, &DecodeError{
				FileName: fileName,
				Offset:   i,
				Message:  fmt.Sprintf("byte 0x%02X has no Windows-1252 mapping", b),
			}
		}
	}
	return DecodeWithReplacement(fileName, src)
}

// FromFile reads the file at path and decodes it with replacement. The file
// name recorded on the SourceFile is the path's base name.
func FromFile(path string) (*SourceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source file: %w", err)
	}
	return DecodeWithReplacement(filepath.Base(path), data)
}

// FromString wraps already-decoded text in a SourceFile.
func FromString(fileName, content string) *SourceFile {
	return &SourceFile{FileName: fileName, Content: content}
}

// Stream returns a fresh cursor positioned at the start of the content.
// The stream borrows the content; it does not copy it.
func (f *SourceFile) Stream() *SourceStream {
	return NewSourceStream(f.FileName, f.Content)
}

func (f *SourceFile) String() string {
	return fmt.Sprintf("SourceFile{file name: %q, content len: %d}", f.FileName, len(f.Content))
}
