package parser

// builder assembles a Node tree bottom-up. startNode opens a node that
// collects everything emitted until the matching finishNode. A checkpoint
// remembers a position among the current node's children so a wrapper node
// can be introduced retroactively, which is how left-nested binary
// expressions are built without backtracking the token cursor.
type builder struct {
	stack []*Node
	root  *Node
}

type checkpoint struct {
	depth    int
	children int
}

func (b *builder) startNode(kind SyntaxKind) {
	b.stack = append(b.stack, &Node{Kind: kind})
}

func (b *builder) finishNode() {
	n := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	if len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		top.Children = append(top.Children, n)
	} else {
		b.root = n
	}
}

func (b *builder) token(t Token) {
	top := b.stack[len(b.stack)-1]
	top.Children = append(top.Children, &Node{Kind: t.Kind, Token: &t})
}

// mark records the current position in the currently open node. It is only
// valid to call startNodeAt with it while the same node is still open.
func (b *builder) mark() checkpoint {
	top := b.stack[len(b.stack)-1]
	return checkpoint{depth: len(b.stack), children: len(top.Children)}
}

// startNodeAt opens a node that adopts every child emitted since the
// checkpoint was taken. The adopted children keep their order; subsequent
// emissions go into the new node until finishNode.
func (b *builder) startNodeAt(c checkpoint, kind SyntaxKind) {
	top := b.stack[c.depth-1]
	n := &Node{Kind: kind}
	n.Children = append(n.Children, top.Children[c.children:]...)
	top.Children = top.Children[:c.children]
	b.stack = append(b.stack, n)
}

func (b *builder) finish() *Node {
	for len(b.stack) > 0 {
		b.finishNode()
	}
	return b.root
}
