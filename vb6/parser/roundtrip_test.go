package parser

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

const classFileSource = "VERSION 1.0 CLASS\r\n" +
	"BEGIN\r\n" +
	"  MultiUse = -1  'True\r\n" +
	"END\r\n" +
	"Attribute VB_Name = \"Stack\"\r\n" +
	"Attribute VB_Exposed = False\r\n" +
	"Option Explicit\r\n" +
	"\r\n" +
	"Private items() As Variant\r\n" +
	"Private count As Long\r\n" +
	"\r\n" +
	"Public Property Get Depth() As Long\r\n" +
	"    Depth = count\r\n" +
	"End Property\r\n" +
	"\r\n" +
	"Public Sub Push(ByVal value As Variant)\r\n" +
	"    If count = 0 Then\r\n" +
	"        ReDim items(0 To 15)\r\n" +
	"    ElseIf count > UBound(items) Then\r\n" +
	"        ReDim Preserve items(0 To UBound(items) * 2)\r\n" +
	"    End If\r\n" +
	"    items(count) = value\r\n" +
	"    count = count + 1\r\n" +
	"End Sub\r\n" +
	"\r\n" +
	"Public Function Pop() As Variant\r\n" +
	"    If count = 0 Then Err.Raise 5\r\n" +
	"    count = count - 1\r\n" +
	"    Pop = items(count)\r\n" +
	"End Function\r\n"

const moduleFileSource = "Attribute VB_Name = \"FileUtils\"\r\n" +
	"Option Explicit\r\n" +
	"\r\n" +
	"Public Function ReadAll(ByVal path As String) As String\r\n" +
	"    Dim handle As Integer\r\n" +
	"    Dim lineText As String\r\n" +
	"    handle = FreeFile\r\n" +
	"    Open path For Input As #handle\r\n" +
	"    Do Until EOF(handle)\r\n" +
	"        Line Input #handle, lineText\r\n" +
	"        ReadAll = ReadAll & lineText & vbCrLf\r\n" +
	"    Loop\r\n" +
	"    Close #handle\r\n" +
	"End Function\r\n" +
	"\r\n" +
	"Public Sub Report(ByVal total As Long)\r\n" +
	"    Select Case total\r\n" +
	"    Case 0\r\n" +
	"        MsgBox \"nothing to do\"\r\n" +
	"    Case Is > 100\r\n" +
	"        MsgBox \"too many: \" & total, vbExclamation\r\n" +
	"    Case Else\r\n" +
	"        MsgBox total & \" item(s)\"\r\n" +
	"    End Select\r\n" +
	"End Sub\r\n"

func TestRoundTripSources(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"class file", classFileSource},
		{"module file", moduleFileSource},
		{"crlf and lf mixed", "a = 1\r\nb = 2\nc = 3\r\n"},
		{"trailing junk", "Dim x\n%%%%\n"},
		{"no final newline", "x = 1"},
		{"comment styles", "' apostrophe\nRem old style\nx = 1 ' trailing\n"},
		{"continuations", "Call Log( _\n    \"a\", _\n    \"b\")\n"},
		{"replacement char", "s = \"caf�\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree, _ := FromText("test.bas", tt.input)
			got := tree.Text()
			if got != tt.input {
				diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
					A:        difflib.SplitLines(tt.input),
					B:        difflib.SplitLines(got),
					FromFile: "input",
					ToFile:   "reconstructed",
					Context:  3,
				})
				t.Errorf("round trip mismatch:\n%s", diff)
			}
		})
	}
}

// The parser must never panic and must always reproduce its input, no
// matter how mangled that input is.
func TestRoundTripHostileInput(t *testing.T) {
	inputs := []string{
		"\x00\x01\x02",
		"If If If Then Then",
		"End End End Sub",
		"Do\nDo\nDo\n",
		"((((((((",
		"\"",
		"#",
		"Sub\n",
		"Select Case\nEnd\n",
		"Property Let\nEnd Property",
		"_\n_\n_\n",
		": : : :",
		"x = f(' comment in open call\n",
		"!For(1Rem xSelect !(Case",
		strings.Repeat("a.", 200),
		strings.Repeat("For i = 1 To 2\n", 50),
	}

	for _, input := range inputs {
		t.Run(strings.ReplaceAll(input[:min(len(input), 20)], "\n", "\\n"), func(t *testing.T) {
			tree, failures := FromText("hostile.bas", input)
			if tree == nil {
				t.Fatal("expected a tree")
			}
			if got := tree.Text(); got != input {
				t.Errorf("round trip: got %q, want %q", got, input)
			}
			_ = failures
		})
	}
}
