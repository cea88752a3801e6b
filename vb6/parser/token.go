package parser

import "fmt"

// Token is a classified slice of source text. Tokens never overlap and their
// spans are contiguous: concatenating the Text of every token in order
// reproduces the input exactly.
type Token struct {
	Kind  SyntaxKind
	Start int
	End   int
	Text  string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d..%d", t.Kind, t.Text, t.Start, t.End)
}

// IsTrivia reports whether the token is whitespace, a newline, or a comment.
func (t Token) IsTrivia() bool {
	return t.Kind.IsTrivia()
}
