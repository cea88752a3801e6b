package parser

// kindEndOfInput is a cursor sentinel, never emitted into the tree.
const kindEndOfInput SyntaxKind = -1

// parser walks the token slice once, left to right, and emits every token
// into the builder exactly once. There is no backtracking: lookahead is done
// by peeking at token kinds, and mismatches are recorded as ParseFailures
// while the offending tokens are wrapped in Unknown nodes.
type parser struct {
	fileName  string
	tokens    []Token
	pos       int
	b         builder
	failures  []ParseFailure
	lineStart bool
}

func newParser(fileName string, tokens []Token) *parser {
	return &parser{fileName: fileName, tokens: tokens, lineStart: true}
}

func (p *parser) atEnd() bool { return p.pos >= len(p.tokens) }

func (p *parser) cur() SyntaxKind {
	if p.atEnd() {
		return kindEndOfInput
	}
	return p.tokens[p.pos].Kind
}

func (p *parser) curText() string {
	if p.atEnd() {
		return ""
	}
	return p.tokens[p.pos].Text
}

func (p *parser) at(kind SyntaxKind) bool { return p.cur() == kind }

// peekKind returns the kind of the nth significant token from the cursor,
// where n == 0 is the current token if it is significant. Whitespace and
// line continuations are skipped; newlines are not, so lookahead never
// crosses a logical line boundary.
func (p *parser) peekKind(n int) SyntaxKind {
	count := 0
	for i := p.pos; i < len(p.tokens); i++ {
		t := p.tokens[i]
		if t.Kind == KindWhitespace {
			continue
		}
		if p.isContinuationAt(i) {
			i++ // skip the newline of the continuation pair too
			continue
		}
		if count == n {
			return t.Kind
		}
		count++
	}
	return kindEndOfInput
}

// isContinuationAt reports whether the token at index i starts a line
// continuation: a lone underscore directly followed by a newline.
func (p *parser) isContinuationAt(i int) bool {
	if i+1 >= len(p.tokens) {
		return false
	}
	return p.tokens[i].Kind == KindUnderscore && p.tokens[i+1].Kind == KindNewline
}

// bump emits the current token into the tree and advances.
func (p *parser) bump() {
	t := p.tokens[p.pos]
	p.b.token(t)
	p.pos++
	switch t.Kind {
	case KindNewline:
		p.lineStart = true
	case KindWhitespace:
		// indentation does not end a line start
	default:
		p.lineStart = false
	}
}

// bumpAs emits the current token re-tagged with a different kind. The
// token's text and span are unchanged, so round-tripping is unaffected.
func (p *parser) bumpAs(kind SyntaxKind) {
	t := p.tokens[p.pos]
	t.Kind = kind
	p.b.token(t)
	p.pos++
	p.lineStart = false
}

// bumpMergedDollar emits the current token and the adjacent dollar sign as
// one Identifier token, the way legacy type-suffixed names such as Left$ or
// Mid$ are spelled.
func (p *parser) bumpMergedDollar() {
	t0 := p.tokens[p.pos]
	t1 := p.tokens[p.pos+1]
	merged := Token{Kind: KindIdentifier, Start: t0.Start, End: t1.End, Text: t0.Text + t1.Text}
	p.b.token(merged)
	p.pos += 2
	p.lineStart = false
}

// atDollarName reports whether the cursor is on a name that should absorb a
// directly adjacent dollar sign into a single identifier.
func (p *parser) atDollarName() bool {
	if p.pos+1 >= len(p.tokens) {
		return false
	}
	t0, t1 := p.tokens[p.pos], p.tokens[p.pos+1]
	if t1.Kind != KindDollarSign || t0.End != t1.Start {
		return false
	}
	return t0.Kind == KindIdentifier || t0.Kind.IsKeyword()
}

// space consumes horizontal whitespace and line continuations. It never
// consumes a plain newline; those end statements.
func (p *parser) space() {
	for {
		switch {
		case p.at(KindWhitespace):
			p.bump()
		case p.isContinuationAt(p.pos):
			p.bump() // underscore
			p.bump() // newline
		default:
			return
		}
	}
}

// atLineEnd reports whether the cursor sits at the end of a logical line.
func (p *parser) atLineEnd() bool {
	switch p.cur() {
	case KindNewline, KindEndOfLineComment, KindRemComment, kindEndOfInput:
		return true
	}
	return false
}

// finishLine consumes trailing whitespace, an optional end-of-line comment,
// and the terminating newline into the currently open node.
func (p *parser) finishLine() {
	p.space()
	if p.at(KindEndOfLineComment) || p.at(KindRemComment) {
		p.bump()
	}
	if p.at(KindNewline) {
		p.bump()
	}
}

// consumeToLineEnd emits raw tokens up to, but not including, the next
// newline. Line continuations are honored and consumed.
func (p *parser) consumeToLineEnd() {
	for !p.atEnd() && !p.at(KindNewline) {
		if p.isContinuationAt(p.pos) {
			p.bump()
			p.bump()
			continue
		}
		p.bump()
	}
}

// name consumes an identifier-position token as an Identifier, accepting
// contextual keywords and merging dollar suffixes. Reserved keywords are
// also accepted; a name position overrides their reserved reading.
func (p *parser) name() bool {
	switch {
	case p.atDollarName():
		p.bumpMergedDollar()
	case p.at(KindIdentifier):
		p.bump()
	case p.cur().IsKeyword():
		p.bumpAs(KindIdentifier)
	default:
		return false
	}
	return true
}

func (p *parser) atName() bool {
	return p.at(KindIdentifier) || p.cur().IsKeyword()
}

func (p *parser) failure(expected string) {
	f := ParseFailure{Expected: expected}
	if p.atEnd() {
		f.AtEOF = true
		f.Found = KindUnknown
		if len(p.tokens) > 0 {
			f.Offset = p.tokens[len(p.tokens)-1].End
		}
	} else {
		f.Found = p.tokens[p.pos].Kind
		f.Offset = p.tokens[p.pos].Start
	}
	p.failures = append(p.failures, f)
}

// expect emits the current token if it has the wanted kind and records a
// failure otherwise. The cursor does not advance on a mismatch; the caller
// decides how to resynchronize.
func (p *parser) expect(kind SyntaxKind, expected string) bool {
	if p.at(kind) {
		p.bump()
		return true
	}
	p.failure(expected)
	return false
}

// recoverStatement records a failure and wraps tokens in an Unknown node
// until the next statement boundary. At least one token is always consumed,
// so recovery cannot stall the parse.
func (p *parser) recoverStatement(expected string) {
	p.failure(expected)
	if p.atEnd() {
		return
	}
	p.b.startNode(KindUnknown)
	p.bump()
	for !p.atEnd() && !p.atLineEnd() && !p.at(KindColonOperator) && !isStatementStart(p.cur()) {
		p.bump()
	}
	p.b.finishNode()
}

// isStatementStart lists the keywords recovery resynchronizes on, in
// addition to line boundaries.
func isStatementStart(kind SyntaxKind) bool {
	switch kind {
	case KindIfKeyword, KindForKeyword, KindDoKeyword, KindWhileKeyword,
		KindSelectKeyword, KindWithKeyword, KindDimKeyword, KindConstKeyword,
		KindSubKeyword, KindFunctionKeyword, KindPropertyKeyword,
		KindPublicKeyword, KindPrivateKeyword, KindFriendKeyword,
		KindEndKeyword, KindLoopKeyword, KindNextKeyword, KindWendKeyword,
		KindElseKeyword, KindElseIfKeyword, KindCaseKeyword,
		KindExitKeyword, KindCallKeyword, KindSetKeyword, KindLetKeyword:
		return true
	}
	return false
}

// atEndOf reports whether the cursor sits on an End keyword whose following
// significant token matches the given kind, as in End Sub or End If.
func (p *parser) atEndOf(kind SyntaxKind) bool {
	return p.at(KindEndKeyword) && p.peekKind(1) == kind
}

// parseModule parses a whole file: an optional form/class header followed
// by module-level statements, all as direct children of the root node.
func (p *parser) parseModule() *Node {
	p.b.startNode(KindRoot)
	for !p.atEnd() {
		start := p.pos
		switch {
		case p.cur().IsTrivia():
			p.bump()
		case p.at(KindColonOperator):
			p.bump()
		case p.at(KindVersionKeyword) && p.lineStart && !p.atAssignment():
			p.parseVersionStatement()
		case p.at(KindBeginKeyword) && p.lineStart && !p.atAssignment():
			p.parsePropertiesBlock()
		default:
			p.parseStatement()
		}
		if p.pos == start && !p.atEnd() {
			// never loop without progress
			p.bump()
		}
	}
	return p.b.finish()
}

// parseStatementList parses statements into a StatementList node until the
// stop condition holds at a significant token or input runs out. Terminator
// tokens themselves are left for the caller.
func (p *parser) parseStatementList(stop func(*parser) bool) {
	p.b.startNode(KindStatementList)
	for !p.atEnd() {
		if p.cur().IsTrivia() {
			p.bump()
			continue
		}
		if stop(p) {
			break
		}
		if p.at(KindColonOperator) {
			p.bump()
			continue
		}
		start := p.pos
		p.parseStatement()
		if p.pos == start && !p.atEnd() {
			p.bump()
		}
	}
	p.b.finishNode()
}
