package parser

// binaryPrecedence maps binary operator token kinds to binding strength.
// Higher binds tighter. Logical Not sits between And and the comparison
// operators and is handled as a prefix in parseUnaryExpression.
var binaryPrecedence = map[SyntaxKind]int{
	KindImpKeyword: 1,
	KindEqvKeyword: 2,
	KindXorKeyword: 3,
	KindOrKeyword:  4,
	KindAndKeyword: 5,

	KindEqualityOperator:           7,
	KindInequalityOperator:         7,
	KindLessThanOperator:           7,
	KindGreaterThanOperator:        7,
	KindLessThanOrEqualOperator:    7,
	KindGreaterThanOrEqualOperator: 7,
	KindLikeKeyword:                7,
	KindIsKeyword:                  7,

	KindAmpersand:              8,
	KindAdditionOperator:       9,
	KindSubtractionOperator:    9,
	KindModKeyword:             10,
	KindBackwardSlashOperator:  11,
	KindMultiplicationOperator: 12,
	KindDivisionOperator:       12,
	KindExponentiationOperator: 14,
}

const notPrecedence = 6

// parseExpression parses one expression. The cursor must be on the first
// token of the expression; trailing trivia is left for the caller.
func (p *parser) parseExpression() {
	p.parseBinaryExpression(1)
}

// parseBinaryExpression implements precedence climbing. All operators are
// left-associative, including exponentiation, so the right operand is parsed
// at one level tighter than the operator. Already-emitted left operands are
// wrapped via a builder checkpoint, which keeps the walk single-pass.
func (p *parser) parseBinaryExpression(minPrec int) {
	cp := p.b.mark()
	p.parseUnaryExpression()
	for {
		prec, ok := binaryPrecedence[p.peekKind(0)]
		if !ok || prec < minPrec {
			return
		}
		p.b.startNodeAt(cp, KindBinaryExpression)
		p.space()
		p.bump() // operator
		p.space()
		p.parseBinaryExpression(prec + 1)
		p.b.finishNode()
	}
}

func (p *parser) parseUnaryExpression() {
	switch p.cur() {
	case KindNotKeyword:
		p.b.startNode(KindUnaryExpression)
		p.bump()
		p.space()
		p.parseBinaryExpression(notPrecedence + 1)
		p.b.finishNode()
	case KindSubtractionOperator, KindAdditionOperator:
		p.b.startNode(KindUnaryExpression)
		p.bump()
		p.space()
		p.parseUnaryExpression()
		p.b.finishNode()
	case KindAddressOfKeyword:
		p.b.startNode(KindAddressOfExpression)
		p.bump()
		p.space()
		p.parsePostfixExpression()
		p.b.finishNode()
	case KindTypeOfKeyword:
		// TypeOf x Is Widget: the Is comparison is handled by the binary
		// loop around the TypeOf operand.
		p.b.startNode(KindTypeOfExpression)
		p.bump()
		p.space()
		p.parsePostfixExpression()
		p.b.finishNode()
	case KindNewKeyword:
		p.b.startNode(KindNewExpression)
		p.bump()
		p.space()
		p.parsePostfixExpression()
		p.b.finishNode()
	default:
		p.parsePostfixExpression()
	}
}

// parsePostfixExpression parses a primary expression followed by any chain
// of member accesses and call or index argument lists.
func (p *parser) parsePostfixExpression() {
	cp := p.b.mark()
	p.parsePrimaryExpression()
	for {
		switch p.peekKind(0) {
		case KindPeriodOperator, KindExclamationMark:
			p.b.startNodeAt(cp, KindMemberAccessExpression)
			p.space()
			p.bump() // separator
			p.space()
			if !p.name() {
				p.failure("member name")
			}
			p.b.finishNode()
		case KindLeftParenthesis:
			p.b.startNodeAt(cp, KindCallExpression)
			p.space()
			p.parseArgumentList()
			p.b.finishNode()
		default:
			return
		}
	}
}

func (p *parser) parsePrimaryExpression() {
	switch {
	case p.atDollarName():
		p.b.startNode(KindIdentifierExpression)
		p.bumpMergedDollar()
		p.b.finishNode()
	case p.at(KindIdentifier):
		p.b.startNode(KindIdentifierExpression)
		p.bump()
		p.b.finishNode()
	case p.cur().IsContextual():
		// A contextual keyword in expression position is an ordinary
		// identifier unless a call follows directly, in which case the
		// builtin reading is kept: pos = Seek(1) calls the Seek function,
		// info.Seek = 1 names a member.
		p.b.startNode(KindIdentifierExpression)
		if p.peekKind(1) == KindLeftParenthesis {
			p.bump()
		} else {
			p.bumpAs(KindIdentifier)
		}
		p.b.finishNode()
	case p.at(KindStringLiteral), p.at(KindIntegerLiteral), p.at(KindLongLiteral),
		p.at(KindSingleLiteral), p.at(KindDoubleLiteral), p.at(KindDecimalLiteral),
		p.at(KindCurrencyLiteral), p.at(KindDateLiteral),
		p.at(KindTrueKeyword), p.at(KindFalseKeyword),
		p.at(KindNothingKeyword), p.at(KindNullKeyword), p.at(KindEmptyKeyword),
		p.at(KindMeKeyword):
		p.b.startNode(KindLiteralExpression)
		p.bump()
		p.b.finishNode()
	case p.at(KindLeftParenthesis):
		p.b.startNode(KindParenthesizedExpression)
		p.bump()
		p.space()
		p.parseExpression()
		p.space()
		p.expect(KindRightParenthesis, "closing parenthesis")
		p.b.finishNode()
	case p.at(KindPeriodOperator), p.at(KindExclamationMark):
		// leading member access inside a With block
		p.b.startNode(KindMemberAccessExpression)
		p.bump()
		if !p.name() {
			p.failure("member name")
		}
		p.b.finishNode()
	case p.cur().IsKeyword():
		// reserved word where a value is required, e.g. String(5, "x")
		p.b.startNode(KindIdentifierExpression)
		if p.peekKind(1) == KindLeftParenthesis {
			p.bump()
		} else {
			p.bumpAs(KindIdentifier)
		}
		p.b.finishNode()
	default:
		p.failure("expression")
		if !p.atEnd() && !p.atLineEnd() {
			p.b.startNode(KindUnknown)
			p.bump()
			p.b.finishNode()
		}
	}
}

// parseArgumentList parses a parenthesized argument list. Omitted arguments
// between commas are legal and simply produce no Argument node.
func (p *parser) parseArgumentList() {
	p.b.startNode(KindArgumentList)
	p.bump() // opening parenthesis
	for {
		p.space()
		switch {
		case p.atEnd() || p.atLineEnd():
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
			p.b.startNode(KindArgument)
			p.parseExpression()
			p.b.finishNode()
		}
	}
}

// parseBareArgumentList parses the unparenthesized arguments of a call
// statement, e.g. MsgBox "hi", vbOKOnly. It stops at the end of the logical
// line or at a colon separator.
func (p *parser) parseBareArgumentList() {
	p.b.startNode(KindArgumentList)
	for {
		p.space()
		if p.atLineEnd() || p.at(KindColonOperator) {
			p.b.finishNode()
			return
		}
		if p.at(KindComma) {
			p.bump()
			continue
		}
		start := p.pos
		p.b.startNode(KindArgument)
		p.parseExpression()
		p.b.finishNode()
		if p.pos == start {
			// the expression parser refused the token; drop it raw so the
			// line still terminates
			p.b.startNode(KindUnknown)
			p.bump()
			p.b.finishNode()
		}
	}
}
