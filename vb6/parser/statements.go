package parser

// parseStatement dispatches on the current token. The cursor is on a
// significant token when this is called; leading trivia belongs to the
// enclosing node.
func (p *parser) parseStatement() {
	if p.atLabel() {
		p.parseLabelStatement()
		return
	}
	if p.atAssignmentStart() && p.atAssignment() &&
		!p.at(KindDateKeyword) && !p.at(KindTimeKeyword) {
		p.parseAssignmentStatement()
		return
	}

	switch p.cur() {
	case KindAttributeKeyword:
		p.parseSimpleLine(KindAttributeStatement)
	case KindOptionKeyword:
		p.parseSimpleLine(KindOptionStatement)
	case KindVersionKeyword:
		p.parseSimpleLine(KindVersionStatement)
	case KindObjectKeyword:
		p.parseSimpleLine(KindObjectStatement)
	case KindDimKeyword:
		p.parseSimpleLine(KindDimStatement)
	case KindReDimKeyword:
		p.parseSimpleLine(KindReDimStatement)
	case KindEraseKeyword:
		p.parseSimpleLine(KindEraseStatement)
	case KindConstKeyword:
		p.parseSimpleLine(KindConstStatement)
	case KindDeclareKeyword:
		p.parseSimpleLine(KindDeclareStatement)
	case KindEventKeyword:
		p.parseSimpleLine(KindEventStatement)
	case KindImplementsKeyword:
		p.parseSimpleLine(KindImplementsStatement)
	case KindDefBoolKeyword, KindDefByteKeyword, KindDefCurKeyword,
		KindDefDateKeyword, KindDefDblKeyword, KindDefDecKeyword,
		KindDefIntKeyword, KindDefLngKeyword, KindDefObjKeyword,
		KindDefSngKeyword, KindDefStrKeyword, KindDefVarKeyword:
		p.parseSimpleLine(KindDefTypeStatement)
	case KindPublicKeyword, KindPrivateKeyword, KindFriendKeyword, KindStaticKeyword:
		p.parseModifiedDeclaration()
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
	case KindIfKeyword:
		p.parseIfStatement()
	case KindForKeyword:
		p.parseForStatement()
	case KindDoKeyword:
		p.parseDoStatement()
	case KindWhileKeyword:
		p.parseWhileStatement()
	case KindSelectKeyword:
		p.parseSelectCaseStatement()
	case KindWithKeyword:
		p.parseWithStatement()
	case KindCallKeyword:
		p.parseCallKeywordStatement()
	case KindSetKeyword:
		p.parseAssignmentKeywordStatement(KindSetStatement)
	case KindLetKeyword:
		p.parseAssignmentKeywordStatement(KindLetStatement)
	case KindRaiseEventKeyword:
		p.parseRaiseEventStatement()
	case KindGotoKeyword:
		p.parseSimpleLine(KindGotoStatement)
	case KindGoSubKeyword:
		p.parseSimpleLine(KindGoSubStatement)
	case KindReturnKeyword:
		p.parseSimpleLine(KindReturnStatement)
	case KindResumeKeyword:
		p.parseSimpleLine(KindResumeStatement)
	case KindExitKeyword:
		p.parseExitStatement()
	case KindOnKeyword:
		p.parseOnStatement()
	case KindEndKeyword:
		p.parseEndToken()
	case KindLineKeyword:
		p.parseLineStatement()
	default:
		if kind, ok := builtinLineStatements[p.cur()]; ok {
			p.parseSimpleLine(kind)
			return
		}
		switch {
		case p.atName():
			p.parseImplicitCallStatement()
		case p.at(KindPeriodOperator) || p.at(KindExclamationMark):
			// a bare member call inside a With block: .Show 1
			p.parseImplicitCallStatement()
		default:
			p.recoverStatement("statement")
		}
	}
}

// atLabel reports whether a line-start identifier followed by a colon is
// under the cursor. Labels are only legal at the start of a logical line.
func (p *parser) atLabel() bool {
	if !p.lineStart {
		return false
	}
	if !p.at(KindIdentifier) && !p.cur().IsContextual() {
		return false
	}
	return p.peekKind(1) == KindColonOperator
}

func (p *parser) parseLabelStatement() {
	p.b.startNode(KindLabelStatement)
	p.name()
	p.space()
	p.bump() // colon
	p.b.finishNode()
}

// atAssignmentStart limits the assignment lookahead to tokens that can
// begin an assignment target.
func (p *parser) atAssignmentStart() bool {
	switch {
	case p.at(KindIdentifier), p.at(KindMeKeyword),
		p.at(KindPeriodOperator), p.at(KindExclamationMark):
		return true
	}
	return p.cur().IsContextual()
}

// atAssignment scans ahead on the current logical line for a top-level
// equals sign reachable through a member or index path. This is what
// decides between pos = Seek(1) as an assignment and Seek 1 as a builtin
// statement.
func (p *parser) atAssignment() bool {
	depth := 0
	sawName := false
	for i := p.pos; i < len(p.tokens); i++ {
		t := p.tokens[i]
		if t.Kind == KindWhitespace {
			continue
		}
		if p.isContinuationAt(i) {
			i++
			continue
		}
		if t.Kind == KindNewline {
			return false
		}
		if depth > 0 {
			switch t.Kind {
			case KindLeftParenthesis:
				depth++
			case KindRightParenthesis:
				depth--
			}
			continue
		}
		switch t.Kind {
		case KindLeftParenthesis:
			if !sawName {
				return false
			}
			depth++
		case KindEqualityOperator:
			return sawName
		case KindPeriodOperator, KindExclamationMark, KindDollarSign:
		case KindIdentifier:
			sawName = true
		default:
			if t.Kind.IsKeyword() {
				sawName = true
				continue
			}
			return false
		}
	}
	return false
}

func (p *parser) parseAssignmentStatement() {
	p.b.startNode(KindAssignmentStatement)
	p.parsePostfixExpression()
	p.space()
	p.expect(KindEqualityOperator, "=")
	p.space()
	p.parseExpression()
	p.finishLine()
	p.b.finishNode()
}

func (p *parser) parseAssignmentKeywordStatement(kind SyntaxKind) {
	p.b.startNode(kind)
	p.bump() // Set or Let
	p.space()
	p.parsePostfixExpression()
	p.space()
	p.expect(KindEqualityOperator, "=")
	p.space()
	p.parseExpression()
	p.finishLine()
	p.b.finishNode()
}

func (p *parser) parseCallKeywordStatement() {
	p.b.startNode(KindCallStatement)
	p.bump() // Call
	p.space()
	p.parsePostfixExpression()
	p.finishLine()
	p.b.finishNode()
}

// parseImplicitCallStatement parses a procedure invocation without the Call
// keyword: MsgBox "hi", vbOKOnly or form.Show.
func (p *parser) parseImplicitCallStatement() {
	p.b.startNode(KindCallStatement)
	p.parsePostfixExpression()
	p.space()
	if !p.atLineEnd() && !p.at(KindColonOperator) {
		p.parseBareArgumentList()
	}
	p.finishLine()
	p.b.finishNode()
}

func (p *parser) parseRaiseEventStatement() {
	p.b.startNode(KindRaiseEventStatement)
	p.bump()
	p.space()
	if p.atName() {
		p.parsePostfixExpression()
	} else {
		p.failure("event name")
	}
	p.finishLine()
	p.b.finishNode()
}

func (p *parser) parseExitStatement() {
	p.b.startNode(KindExitStatement)
	p.bump()
	p.space()
	switch p.cur() {
	case KindSubKeyword, KindFunctionKeyword, KindPropertyKeyword,
		KindForKeyword, KindDoKeyword:
		p.bump()
	default:
		p.failure("Sub, Function, Property, For, or Do")
	}
	p.finishLine()
	p.b.finishNode()
}

// parseOnStatement distinguishes On Error, On ... GoTo, and On ... GoSub by
// scanning the rest of the line, then consumes the line raw.
func (p *parser) parseOnStatement() {
	kind := KindOnErrorStatement
	if p.peekKind(1) != KindErrorKeyword {
		kind = KindOnGoToStatement
		for i := p.pos; i < len(p.tokens) && p.tokens[i].Kind != KindNewline; i++ {
			if p.tokens[i].Kind == KindGoSubKeyword {
				kind = KindOnGoSubStatement
				break
			}
		}
	}
	p.parseSimpleLine(kind)
}

// parseEndToken handles an End keyword that no enclosing block claimed. A
// bare End halts the program and is consumed as-is; End followed by a block
// terminator word is a stray terminator and is wrapped as Unknown.
func (p *parser) parseEndToken() {
	switch p.peekKind(1) {
	case KindSubKeyword, KindFunctionKeyword, KindPropertyKeyword,
		KindIfKeyword, KindSelectKeyword, KindWithKeyword,
		KindTypeKeyword, KindEnumKeyword:
		p.failure("statement")
		p.b.startNode(KindUnknown)
		p.bump() // End
		p.space()
		p.bump() // the stray terminator word
		p.b.finishNode()
	default:
		p.bump()
	}
}

func (p *parser) parseIfStatement() {
	p.b.startNode(KindIfStatement)
	p.bump() // If
	p.space()
	p.parseExpression()
	p.space()
	p.expect(KindThenKeyword, "Then")
	p.space()
	if p.atLineEnd() {
		p.parseBlockIfTail()
	} else {
		p.parseInlineBody()
	}
	p.b.finishNode()
}

func (p *parser) parseBlockIfTail() {
	p.finishLine()
	stop := func(p *parser) bool {
		return p.at(KindElseIfKeyword) || p.at(KindElseKeyword) || p.atEndOf(KindIfKeyword)
	}
	p.parseStatementList(stop)
	for p.at(KindElseIfKeyword) {
		p.b.startNode(KindElseIfClause)
		p.bump()
		p.space()
		p.parseExpression()
		p.space()
		p.expect(KindThenKeyword, "Then")
		p.finishLine()
		p.parseStatementList(stop)
		p.b.finishNode()
	}
	if p.at(KindElseKeyword) {
		p.b.startNode(KindElseClause)
		p.bump()
		p.finishLine()
		p.parseStatementList(func(p *parser) bool { return p.atEndOf(KindIfKeyword) })
		p.b.finishNode()
	}
	if p.atEndOf(KindIfKeyword) {
		p.bump() // End
		p.space()
		p.bump() // If
		p.finishLine()
	} else {
		p.failure("End If")
	}
}

// parseInlineBody parses the statements of a single-line If, including an
// optional inline Else arm. It ends when the logical line does.
func (p *parser) parseInlineBody() {
	for !p.atEnd() {
		p.space()
		if p.atLineEnd() {
			p.finishLine()
			return
		}
		if p.at(KindColonOperator) {
			p.bump()
			continue
		}
		if p.at(KindElseKeyword) {
			p.b.startNode(KindElseClause)
			p.bump()
			p.parseInlineBody()
			p.b.finishNode()
			return
		}
		start := p.pos
		p.parseStatement()
		if p.lineStart {
			return // the statement consumed the newline
		}
		if p.pos == start && !p.atEnd() {
			p.bump()
		}
	}
}

func (p *parser) parseForStatement() {
	kind := KindForStatement
	each := p.peekKind(1) == KindEachKeyword
	if each {
		kind = KindForEachStatement
	}
	p.b.startNode(kind)
	p.bump() // For
	p.space()
	if each {
		p.bump() // Each
		p.space()
	}
	if !p.name() {
		p.failure("loop variable")
	}
	p.space()
	if each {
		p.expect(KindInKeyword, "In")
		p.space()
		p.parseExpression()
	} else {
		p.expect(KindEqualityOperator, "=")
		p.space()
		p.parseExpression()
		p.space()
		p.expect(KindToKeyword, "To")
		p.space()
		p.parseExpression()
		p.space()
		if p.at(KindStepKeyword) {
			p.bump()
			p.space()
			p.parseExpression()
		}
	}
	p.finishLine()
	p.parseStatementList(func(p *parser) bool { return p.at(KindNextKeyword) })
	if p.at(KindNextKeyword) {
		p.bump()
		p.space()
		if !p.atLineEnd() && p.atName() {
			p.parsePostfixExpression()
		}
		p.finishLine()
	} else {
		p.failure("Next")
	}
	p.b.finishNode()
}

func (p *parser) parseDoStatement() {
	p.b.startNode(KindDoStatement)
	p.bump() // Do
	p.space()
	if p.at(KindWhileKeyword) || p.at(KindUntilKeyword) {
		p.bump()
		p.space()
		p.parseExpression()
	}
	p.finishLine()
	p.parseStatementList(func(p *parser) bool { return p.at(KindLoopKeyword) })
	if p.at(KindLoopKeyword) {
		p.bump()
		p.space()
		if p.at(KindWhileKeyword) || p.at(KindUntilKeyword) {
			p.bump()
			p.space()
			p.parseExpression()
		}
		p.finishLine()
	} else {
		p.failure("Loop")
	}
	p.b.finishNode()
}

func (p *parser) parseWhileStatement() {
	p.b.startNode(KindWhileStatement)
	p.bump() // While
	p.space()
	p.parseExpression()
	p.finishLine()
	p.parseStatementList(func(p *parser) bool { return p.at(KindWendKeyword) })
	if p.at(KindWendKeyword) {
		p.bump()
		p.finishLine()
	} else {
		p.failure("Wend")
	}
	p.b.finishNode()
}

func (p *parser) parseSelectCaseStatement() {
	p.b.startNode(KindSelectCaseStatement)
	p.bump() // Select
	p.space()
	p.expect(KindCaseKeyword, "Case")
	p.space()
	p.parseExpression()
	p.finishLine()
	stop := func(p *parser) bool {
		return p.at(KindCaseKeyword) || p.atEndOf(KindSelectKeyword)
	}
	p.parseStatementList(stop)
	for p.at(KindCaseKeyword) {
		if p.peekKind(1) == KindElseKeyword {
			p.b.startNode(KindCaseElseClause)
			p.bump() // Case
			p.space()
			p.bump() // Else
			p.finishLine()
			p.parseStatementList(stop)
			p.b.finishNode()
			continue
		}
		p.b.startNode(KindCaseClause)
		p.bump() // Case
		p.space()
		p.parseCaseValues()
		p.finishLine()
		p.parseStatementList(stop)
		p.b.finishNode()
	}
	if p.atEndOf(KindSelectKeyword) {
		p.bump() // End
		p.space()
		p.bump() // Select
		p.finishLine()
	} else {
		p.failure("End Select")
	}
	p.b.finishNode()
}

// parseCaseValues parses the comma-separated value list of a Case clause:
// plain expressions, low To high ranges, and Is comparisons.
func (p *parser) parseCaseValues() {
	for {
		if p.at(KindIsKeyword) {
			p.bump()
			p.space()
			switch p.cur() {
			case KindEqualityOperator, KindInequalityOperator,
				KindLessThanOperator, KindGreaterThanOperator,
				KindLessThanOrEqualOperator, KindGreaterThanOrEqualOperator:
				p.bump()
				p.space()
			default:
				p.failure("comparison operator")
			}
			p.parseExpression()
		} else {
			p.parseExpression()
			p.space()
			if p.at(KindToKeyword) {
				p.bump()
				p.space()
				p.parseExpression()
			}
		}
		p.space()
		if !p.at(KindComma) {
			return
		}
		p.bump()
		p.space()
	}
}

func (p *parser) parseWithStatement() {
	p.b.startNode(KindWithStatement)
	p.bump() // With
	p.space()
	p.parseExpression()
	p.finishLine()
	p.parseStatementList(func(p *parser) bool { return p.atEndOf(KindWithKeyword) })
	if p.atEndOf(KindWithKeyword) {
		p.bump() // End
		p.space()
		p.bump() // With
		p.finishLine()
	} else {
		p.failure("End With")
	}
	p.b.finishNode()
}

func (p *parser) parseVersionStatement() {
	p.parseSimpleLine(KindVersionStatement)
}

// parsePropertiesBlock parses the Begin ... End designer header of form and
// class files. Property assignment lines reuse the assignment grammar;
// nested Begin sections become PropertyGroup nodes; anything else on a line
// is kept raw as a PropertyValue.
func (p *parser) parsePropertiesBlock() {
	p.parsePropertiesBlockAs(KindPropertiesBlock)
}

func (p *parser) parsePropertiesBlockAs(kind SyntaxKind) {
	p.b.startNode(kind)
	p.bump() // Begin
	p.consumeToLineEnd()
	if p.at(KindNewline) {
		p.bump()
	}
	for !p.atEnd() {
		if p.cur().IsTrivia() {
			p.bump()
			continue
		}
		if p.at(KindEndKeyword) {
			break
		}
		if p.at(KindBeginKeyword) {
			p.parsePropertiesBlockAs(KindPropertyGroup)
			continue
		}
		if p.atAssignmentStart() && p.atAssignment() {
			p.parseAssignmentStatement()
			continue
		}
		p.b.startNode(KindPropertyValue)
		p.consumeToLineEnd()
		if p.at(KindNewline) {
			p.bump()
		}
		p.b.finishNode()
	}
	if p.at(KindEndKeyword) {
		p.bump()
		p.finishLine()
	} else {
		p.failure("End")
	}
	p.b.finishNode()
}
