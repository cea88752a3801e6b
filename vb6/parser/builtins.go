package parser

import "strings"

// keywordText renders a keyword kind as its source spelling for failure
// messages: KindLoopKeyword becomes "Loop".
func keywordText(kind SyntaxKind) string {
	return strings.TrimSuffix(kind.String(), "Keyword")
}

// builtinLineStatements maps the keyword that opens a single-line runtime
// library statement to its statement node kind. These statements carry
// legacy micro-grammars of their own, with file numbers, semicolons, and
// positional keywords; their bodies are kept as raw token runs inside the
// statement node. Contextual keywords in this table lose to the assignment
// reading when the line contains a top-level equals sign, except Date and
// Time, whose statement forms are themselves assignments.
var builtinLineStatements = map[SyntaxKind]SyntaxKind{
	KindAppActivateKeyword:   KindAppActivateStatement,
	KindBeepKeyword:          KindBeepStatement,
	KindChDirKeyword:         KindChDirStatement,
	KindChDriveKeyword:       KindChDriveStatement,
	KindCloseKeyword:         KindCloseStatement,
	KindDateKeyword:          KindDateStatement,
	KindDeleteSettingKeyword: KindDeleteSettingStatement,
	KindErrorKeyword:         KindErrorStatement,
	KindFileCopyKeyword:      KindFileCopyStatement,
	KindGetKeyword:           KindGetStatement,
	KindInputKeyword:         KindInputStatement,
	KindKillKeyword:          KindKillStatement,
	KindLoadKeyword:          KindLoadStatement,
	KindLockKeyword:          KindLockStatement,
	KindLSetKeyword:          KindLSetStatement,
	KindMidBKeyword:          KindMidBStatement,
	KindMidKeyword:           KindMidStatement,
	KindMkDirKeyword:         KindMkDirStatement,
	KindNameKeyword:          KindNameStatement,
	KindOpenKeyword:          KindOpenStatement,
	KindPrintKeyword:         KindPrintStatement,
	KindPutKeyword:           KindPutStatement,
	KindRandomizeKeyword:     KindRandomizeStatement,
	KindResetKeyword:         KindResetStatement,
	KindRmDirKeyword:         KindRmDirStatement,
	KindRSetKeyword:          KindRSetStatement,
	KindSavePictureKeyword:   KindSavePictureStatement,
	KindSaveSettingKeyword:   KindSaveSettingStatement,
	KindSeekKeyword:          KindSeekStatement,
	KindSendKeysKeyword:      KindSendKeysStatement,
	KindSetAttrKeyword:       KindSetAttrStatement,
	KindStopKeyword:          KindStopStatement,
	KindTimeKeyword:          KindTimeStatement,
	KindUnloadKeyword:        KindUnloadStatement,
	KindUnlockKeyword:        KindUnlockStatement,
	KindWidthKeyword:         KindWidthStatement,
	KindWriteKeyword:         KindWriteStatement,
}

// parseSimpleLine wraps one logical line in a node of the given kind: the
// leading token, everything up to the newline with line continuations
// honored, and the newline itself.
func (p *parser) parseSimpleLine(kind SyntaxKind) {
	p.b.startNode(kind)
	p.bump()
	p.consumeToLineEnd()
	if p.at(KindNewline) {
		p.bump()
	}
	p.b.finishNode()
}

// parseLineStatement handles the Line keyword. Line Input # reads a record
// from a file; any other Line form belongs to the drawing grammar, which is
// not modeled, so the line is preserved as Unknown with a failure.
func (p *parser) parseLineStatement() {
	if p.peekKind(1) != KindInputKeyword {
		p.recoverStatement("Input after Line")
		return
	}
	p.b.startNode(KindLineInputStatement)
	p.bump() // Line
	p.space()
	p.bump() // Input
	p.consumeToLineEnd()
	if p.at(KindNewline) {
		p.bump()
	}
	p.b.finishNode()
}
