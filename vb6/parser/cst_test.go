package parser

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNodeSpanAndText(t *testing.T) {
	tree := parseClean(t, "x = 1 + 2\n")
	assign := tree.Root.Find(KindAssignmentStatement)
	start, end, ok := assign.Span()
	if !ok {
		t.Fatal("expected a span")
	}
	if start != 0 || end != len("x = 1 + 2\n") {
		t.Errorf("span: got %d..%d", start, end)
	}

	expr := assign.Find(KindBinaryExpression)
	if expr.Text() != "1 + 2" {
		t.Errorf("expression text: got %q", expr.Text())
	}
	start, end, _ = expr.Span()
	if start != 4 || end != 9 {
		t.Errorf("expression span: got %d..%d, want 4..9", start, end)
	}

	empty := &Node{Kind: KindStatementList}
	if _, _, ok := empty.Span(); ok {
		t.Error("empty node should have no span")
	}
}

func TestNodeNavigation(t *testing.T) {
	tree := parseClean(t, "Dim a\nDim b\nx = 1\n")
	dims := tree.Root.ChildrenOfKind(KindDimStatement)
	if len(dims) != 2 {
		t.Fatalf("got %d Dim statements, want 2", len(dims))
	}
	if first := tree.Root.FirstChildOfKind(KindDimStatement); first != dims[0] {
		t.Error("FirstChildOfKind should return the first match")
	}
	if !tree.ContainsKind(KindAssignmentStatement) {
		t.Error("ContainsKind should see the assignment")
	}
	if tree.ContainsKind(KindForStatement) {
		t.Error("ContainsKind should not invent nodes")
	}
}

func TestDebugString(t *testing.T) {
	tree := parseClean(t, "x = 1\n")
	dump := tree.DebugString()
	for _, want := range []string{"Root", "AssignmentStatement", "IdentifierExpression", "IntegerLiteral \"1\""} {
		if !strings.Contains(dump, want) {
			t.Errorf("debug string should contain %q:\n%s", want, dump)
		}
	}
	lines := strings.Split(strings.TrimRight(dump, "\n"), "\n")
	if !strings.HasPrefix(lines[1], "  ") {
		t.Error("children should be indented")
	}
}

func TestNodeMarshalJSON(t *testing.T) {
	tree := parseClean(t, "x = 1\n")
	data, err := json.Marshal(tree.Root)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded struct {
		Kind     string `json:"kind"`
		Children []struct {
			Kind string `json:"kind"`
			Text string `json:"text"`
		} `json:"children"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Kind != "Root" {
		t.Errorf("kind: got %q", decoded.Kind)
	}
	if len(decoded.Children) == 0 {
		t.Fatal("expected children")
	}
	if decoded.Children[0].Kind != "AssignmentStatement" {
		t.Errorf("first child: got %q", decoded.Children[0].Kind)
	}
}

func TestParseFailureString(t *testing.T) {
	f := ParseFailure{Offset: 12, Expected: "Then", Found: KindNewline}
	if got := f.String(); got != "offset 12: expected Then, found Newline" {
		t.Errorf("got %q", got)
	}
	eof := ParseFailure{Offset: 40, Expected: "End If", AtEOF: true}
	if !strings.Contains(eof.String(), "end of input") {
		t.Errorf("got %q", eof.String())
	}
}
