package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dhamidi/vbparse/vb6"
)

// Node is one element of a concrete syntax tree. A node either owns children
// or carries a Token; leaves with a Token have no children. The tree is
// strictly owned: every node has exactly one parent and nodes are never
// mutated after attachment.
type Node struct {
	Kind     SyntaxKind
	Children []*Node
	Token    *Token
}

// IsToken reports whether the node is a token leaf.
func (n *Node) IsToken() bool { return n.Token != nil }

// Text reconstructs the exact source text covered by the node by
// concatenating its leaf tokens in order.
func (n *Node) Text() string {
	var sb strings.Builder
	n.writeText(&sb)
	return sb.String()
}

func (n *Node) writeText(sb *strings.Builder) {
	if n.Token != nil {
		sb.WriteString(n.Token.Text)
		return
	}
	for _, child := range n.Children {
		child.writeText(sb)
	}
}

// Span returns the byte range of the original text the node covers. The
// second result is false for nodes with no tokens underneath.
func (n *Node) Span() (start, end int, ok bool) {
	if n.Token != nil {
		return n.Token.Start, n.Token.End, true
	}
	first := n.firstToken()
	last := n.lastToken()
	if first == nil || last == nil {
		return 0, 0, false
	}
	return first.Start, last.End, true
}

func (n *Node) firstToken() *Token {
	if n.Token != nil {
		return n.Token
	}
	for _, child := range n.Children {
		if t := child.firstToken(); t != nil {
			return t
		}
	}
	return nil
}

func (n *Node) lastToken() *Token {
	if n.Token != nil {
		return n.Token
	}
	for i := len(n.Children) - 1; i >= 0; i-- {
		if t := n.Children[i].lastToken(); t != nil {
			return t
		}
	}
	return nil
}

// FirstChildOfKind returns the first direct child of the given kind, or nil.
func (n *Node) FirstChildOfKind(kind SyntaxKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// ChildrenOfKind returns all direct children of the given kind.
func (n *Node) ChildrenOfKind(kind SyntaxKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// Find returns the first node of the given kind in a depth-first walk of the
// subtree rooted at n, including n itself, or nil.
func (n *Node) Find(kind SyntaxKind) *Node {
	if n.Kind == kind {
		return n
	}
	for _, child := range n.Children {
		if found := child.Find(kind); found != nil {
			return found
		}
	}
	return nil
}

// ContainsKind reports whether any node or token of the given kind exists in
// the subtree rooted at n.
func (n *Node) ContainsKind(kind SyntaxKind) bool {
	return n.Find(kind) != nil
}

// Meaningful returns the node's direct children with trivia filtered out.
func (n *Node) Meaningful() []*Node {
	var result []*Node
	for _, child := range n.Children {
		if !child.Kind.IsTrivia() {
			result = append(result, child)
		}
	}
	return result
}

// DebugString renders the subtree with one node per line, indented by depth.
func (n *Node) DebugString() string {
	var sb strings.Builder
	n.debugString(&sb, 0)
	return sb.String()
}

func (n *Node) debugString(sb *strings.Builder, indent int) {
	for i := 0; i < indent; i++ {
		sb.WriteString("  ")
	}
	sb.WriteString(n.Kind.String())
	if n.Token != nil {
		fmt.Fprintf(sb, " %q", n.Token.Text)
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.debugString(sb, indent+1)
	}
}

// MarshalJSON renders the node with kind names instead of numeric kinds.
// Token leaves carry their text and span; interior nodes their children.
func (n *Node) MarshalJSON() ([]byte, error) {
	type tokenJSON struct {
		Kind  string `json:"kind"`
		Text  string `json:"text"`
		Start int    `json:"start"`
		End   int    `json:"end"`
	}
	type nodeJSON struct {
		Kind     string  `json:"kind"`
		Children []*Node `json:"children"`
	}
	if n.Token != nil {
		return json.Marshal(tokenJSON{
			Kind:  n.Kind.String(),
			Text:  n.Token.Text,
			Start: n.Token.Start,
			End:   n.Token.End,
		})
	}
	return json.Marshal(nodeJSON{Kind: n.Kind.String(), Children: n.Children})
}

// ParseFailure records a local grammar mismatch: the position it occurred
// at, what the parser expected there, and what it found instead. Failures
// are diagnostic only; they never block tree construction.
type ParseFailure struct {
	Offset   int
	Expected string
	Found    SyntaxKind
	AtEOF    bool
}

func (f ParseFailure) String() string {
	found := f.Found.String()
	if f.AtEOF {
		found = "end of input"
	}
	return fmt.Sprintf("offset %d: expected %s, found %s", f.Offset, f.Expected, found)
}

// ConcreteSyntaxTree is the result of parsing one source file: a root node
// that contains every input token, trivia included, so that Text() returns
// the original source character for character.
type ConcreteSyntaxTree struct {
	FileName string
	Root     *Node
}

// Text reconstructs the full original source text.
func (t *ConcreteSyntaxTree) Text() string {
	if t.Root == nil {
		return ""
	}
	return t.Root.Text()
}

// DebugString renders the whole tree for inspection in tests and tooling.
func (t *ConcreteSyntaxTree) DebugString() string {
	if t.Root == nil {
		return ""
	}
	return t.Root.DebugString()
}

// ContainsKind reports whether any node or token of the given kind exists
// anywhere in the tree.
func (t *ConcreteSyntaxTree) ContainsKind(kind SyntaxKind) bool {
	return t.Root != nil && t.Root.ContainsKind(kind)
}

// FromText tokenizes and parses already-decoded source text. The tree is nil
// only when tokenization yields nothing to build a root from, which for a
// non-empty input does not happen: unclassifiable characters become Unknown
// tokens, and every recovery path keeps the parse moving. The failure list
// describes each local mismatch encountered along the way.
func FromText(fileName, text string) (*ConcreteSyntaxTree, []ParseFailure) {
	tokens := Tokenize(vb6.NewSourceStream(fileName, text))
	p := newParser(fileName, tokens)
	root := p.parseModule()
	return &ConcreteSyntaxTree{FileName: fileName, Root: root}, p.failures
}

// FromSource parses the decoded content of a SourceFile.
func FromSource(file *vb6.SourceFile) (*ConcreteSyntaxTree, []ParseFailure) {
	return FromText(file.FileName, file.Content)
}
