package parser

// parseModifiedDeclaration dispatches a declaration that starts with one or
// more access or lifetime modifiers. The first significant word after the
// modifiers decides the declaration form.
func (p *parser) parseModifiedDeclaration() {
	decides := kindEndOfInput
	for n := 1; n < 4; n++ {
		k := p.peekKind(n)
		switch k {
		case KindPublicKeyword, KindPrivateKeyword, KindFriendKeyword, KindStaticKeyword:
			continue
		}
		decides = k
		break
	}
	switch decides {
	case KindSubKeyword:
		p.parseProcedure(KindSubStatement, KindSubKeyword)
	case KindFunctionKeyword:
		p.parseProcedure(KindFunctionStatement, KindFunctionKeyword)
	case KindPropertyKeyword:
		p.parseProcedure(KindPropertyStatement, KindPropertyKeyword)
	case KindTypeKeyword:
		p.parseTypeBlock(KindTypeStatement, KindTypeKeyword)
	case KindEnumKeyword:
		p.parseTypeBlock(KindEnumStatement, KindEnumKeyword)
	case KindDeclareKeyword:
		p.parseSimpleLine(KindDeclareStatement)
	case KindEventKeyword:
		p.parseSimpleLine(KindEventStatement)
	case KindConstKeyword:
		p.parseSimpleLine(KindConstStatement)
	default:
		// Public x As Long, Private WithEvents btn As CommandButton
		p.parseSimpleLine(KindDimStatement)
	}
}

// parseProcedure parses a Sub, Function, or Property block including any
// leading modifiers, the signature line, the body, and the End terminator.
func (p *parser) parseProcedure(kind, procKeyword SyntaxKind) {
	p.b.startNode(kind)
	for {
		switch p.cur() {
		case KindPublicKeyword, KindPrivateKeyword, KindFriendKeyword, KindStaticKeyword:
			p.bump()
			p.space()
			continue
		}
		break
	}
	p.expect(procKeyword, keywordText(procKeyword))
	p.space()
	if kind == KindPropertyStatement {
		switch p.cur() {
		case KindGetKeyword, KindLetKeyword, KindSetKeyword:
			p.bump()
			p.space()
		default:
			p.failure("Get, Let, or Set")
		}
	}
	if !p.name() {
		p.failure("procedure name")
	}
	p.space()
	if p.at(KindLeftParenthesis) {
		p.parseParameterList()
	}
	p.space()
	if p.at(KindAsKeyword) {
		p.bump()
		p.space()
		if p.atName() {
			p.bump() // return type, type keywords keep their kind
		} else {
			p.failure("type name")
		}
		// array-valued returns: Function Parts() As String()
		p.space()
		if p.at(KindLeftParenthesis) && p.peekKind(1) == KindRightParenthesis {
			p.bump()
			p.space()
			p.bump()
		}
	}
	p.finishLine()
	p.parseStatementList(func(p *parser) bool { return p.atEndOf(procKeyword) })
	if p.atEndOf(procKeyword) {
		p.bump() // End
		p.space()
		p.bump() // Sub, Function, or Property
		p.finishLine()
	} else {
		p.failure("End " + keywordText(procKeyword))
	}
	p.b.finishNode()
}

// parseParameterList parses a parenthesized formal parameter list. Each
// parameter is kept as a raw token run in its own Parameter node; the
// parameter sub-grammar of modifiers, array parentheses, types, and default
// values is uniform enough that the tokens speak for themselves.
func (p *parser) parseParameterList() {
	p.b.startNode(KindParameterList)
	p.bump() // opening parenthesis
	for {
		p.space()
		switch {
		case p.atEnd() || p.at(KindNewline):
			p.failure("closing parenthesis")
			p.b.finishNode()
			return
		case p.at(KindRightParenthesis):
			p.bump()
			p.b.finishNode()
			return
		case p.at(KindComma):
			p.bump()
		default:
			p.parseParameter()
		}
	}
}

func (p *parser) parseParameter() {
	p.b.startNode(KindParameter)
	depth := 0
	for !p.atEnd() && !p.at(KindNewline) {
		if p.isContinuationAt(p.pos) {
			p.bump()
			p.bump()
			continue
		}
		switch p.cur() {
		case KindLeftParenthesis:
			depth++
		case KindRightParenthesis:
			if depth == 0 {
				p.b.finishNode()
				return
			}
			depth--
		case KindComma:
			if depth == 0 {
				p.b.finishNode()
				return
			}
		}
		p.bump()
	}
	p.b.finishNode()
}

// parseTypeBlock parses a user-defined Type or Enum block. Member lines are
// kept raw; the block structure and terminator are what matter.
func (p *parser) parseTypeBlock(kind, keyword SyntaxKind) {
	p.b.startNode(kind)
	for {
		switch p.cur() {
		case KindPublicKeyword, KindPrivateKeyword:
			p.bump()
			p.space()
			continue
		}
		break
	}
	p.expect(keyword, keywordText(keyword))
	p.space()
	if !p.name() {
		p.failure("name")
	}
	p.finishLine()
	for !p.atEnd() && !p.atEndOf(keyword) {
		if p.cur().IsTrivia() {
			p.bump()
			continue
		}
		p.consumeToLineEnd()
		if p.at(KindNewline) {
			p.bump()
		}
	}
	if p.atEndOf(keyword) {
		p.bump() // End
		p.space()
		p.bump() // Type or Enum
		p.finishLine()
	} else {
		p.failure("End " + keywordText(keyword))
	}
	p.b.finishNode()
}
