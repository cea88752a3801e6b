package parser

import (
	"strings"
	"testing"

	"github.com/dhamidi/vbparse/vb6"
)

func tokenize(input string) []Token {
	return Tokenize(vb6.NewSourceStream("test.bas", input))
}

func kinds(tokens []Token) []SyntaxKind {
	var result []SyntaxKind
	for _, t := range tokens {
		if t.Kind != KindWhitespace {
			result = append(result, t.Kind)
		}
	}
	return result
}

func TestTokenizeKinds(t *testing.T) {
	tests := []struct {
		input    string
		expected []SyntaxKind
	}{
		{"", nil},
		{"Dim x As Long", []SyntaxKind{KindDimKeyword, KindIdentifier, KindAsKeyword, KindLongKeyword}},
		{"DIM dim Dim", []SyntaxKind{KindDimKeyword, KindDimKeyword, KindDimKeyword}},
		{"x = 1", []SyntaxKind{KindIdentifier, KindEqualityOperator, KindIntegerLiteral}},
		{"a <> b", []SyntaxKind{KindIdentifier, KindInequalityOperator, KindIdentifier}},
		{"a <= b >= c", []SyntaxKind{KindIdentifier, KindLessThanOrEqualOperator, KindIdentifier, KindGreaterThanOrEqualOperator, KindIdentifier}},
		{"Call f(1, 2)", []SyntaxKind{KindCallKeyword, KindIdentifier, KindLeftParenthesis, KindIntegerLiteral, KindComma, KindIntegerLiteral, KindRightParenthesis}},
		{"' a comment", []SyntaxKind{KindEndOfLineComment}},
		{"Rem old style", []SyntaxKind{KindRemComment}},
		{"Remainder = 1", []SyntaxKind{KindIdentifier, KindEqualityOperator, KindIntegerLiteral}},
		{"\"hello\"", []SyntaxKind{KindStringLiteral}},
		{"\"say \"\"hi\"\"\"", []SyntaxKind{KindStringLiteral}},
		{"#1/15/2000#", []SyntaxKind{KindDateLiteral}},
		{"#1, record", []SyntaxKind{KindOctothorpe, KindIntegerLiteral, KindComma, KindIdentifier}},
		{"x\r\ny", []SyntaxKind{KindIdentifier, KindNewline, KindIdentifier}},
		{"Left$(s, 1)", []SyntaxKind{KindIdentifier, KindDollarSign, KindLeftParenthesis, KindIdentifier, KindComma, KindIntegerLiteral, KindRightParenthesis}},
		{"my_var", []SyntaxKind{KindIdentifier}},
		{"a _\nb", []SyntaxKind{KindIdentifier, KindUnderscore, KindNewline, KindIdentifier}},
		{"obj.method", []SyntaxKind{KindIdentifier, KindPeriodOperator, KindIdentifier}},
		{"rst!Field", []SyntaxKind{KindIdentifier, KindExclamationMark, KindIdentifier}},
		{"2 ^ 8 \\ 3 Mod 2", []SyntaxKind{KindIntegerLiteral, KindExponentiationOperator, KindIntegerLiteral, KindBackwardSlashOperator, KindIntegerLiteral, KindModKeyword, KindIntegerLiteral}},
		{"\x01", []SyntaxKind{KindUnknown}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := kinds(tokenize(tt.input))
			if len(got) != len(tt.expected) {
				t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(tt.expected), tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestTokenizeNumericLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  SyntaxKind
	}{
		{"42", KindIntegerLiteral},
		{"42%", KindIntegerLiteral},
		{"42&", KindLongLiteral},
		{"42!", KindSingleLiteral},
		{"42#", KindDoubleLiteral},
		{"42@", KindDecimalLiteral},
		{"3.14", KindSingleLiteral},
		{"1E5", KindSingleLiteral},
		{"1.5E-10", KindSingleLiteral},
		{"2.5#", KindDoubleLiteral},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := tokenize(tt.input)
			if len(tokens) != 1 {
				t.Fatalf("got %d tokens, want 1: %v", len(tokens), tokens)
			}
			if tokens[0].Kind != tt.kind {
				t.Errorf("kind: got %v, want %v", tokens[0].Kind, tt.kind)
			}
			if tokens[0].Text != tt.input {
				t.Errorf("text: got %q, want %q", tokens[0].Text, tt.input)
			}
		})
	}
}

func TestTokenizeStringLiteralText(t *testing.T) {
	tokens := tokenize("\"a\"\"b\" & x")
	if tokens[0].Kind != KindStringLiteral {
		t.Fatalf("kind: got %v", tokens[0].Kind)
	}
	if tokens[0].Text != "\"a\"\"b\"" {
		t.Errorf("text: got %q", tokens[0].Text)
	}
}

func TestTokenizeUnterminatedString(t *testing.T) {
	tokens := tokenize("\"open\nnext")
	got := kinds(tokens)
	want := []SyntaxKind{KindStringLiteral, KindNewline, KindIdentifier}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("token %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// Concatenating every token's text must reproduce the input byte for byte;
// this holds for valid and invalid input alike.
func TestTokenizeRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"Dim x As Long\r\nx = 1\r\n",
		"If a Then\n  b\nEnd If\n",
		"' comment\nRem another\n",
		"\"unterminated\nPrint #1, \"done\"\n",
		"odd bytes \x01\x02 here",
		"#not a date\n x = 1.5E+3@",
		"   \t  mixed \t whitespace  ",
	}

	for _, input := range inputs {
		t.Run(strings.ReplaceAll(input, "\n", "\\n"), func(t *testing.T) {
			var sb strings.Builder
			offset := 0
			for _, tok := range tokenize(input) {
				if tok.Start != offset {
					t.Errorf("token %v starts at %d, want %d", tok, tok.Start, offset)
				}
				offset = tok.End
				sb.WriteString(tok.Text)
			}
			if sb.String() != input {
				t.Errorf("round trip: got %q, want %q", sb.String(), input)
			}
		})
	}
}
