package parser

// SyntaxKind identifies every node and token kind a concrete syntax tree can
// contain. Node kinds own children; token kinds are leaves. KindUnknown is
// both: the tokenizer emits single-character Unknown tokens for bytes it
// cannot classify, and the parser wraps unparseable token runs in Unknown
// nodes during recovery.
type SyntaxKind int

const (
	// Root node of the syntax tree.
	KindRoot SyntaxKind = iota

	// Statement nodes.
	KindModuleStatement
	KindClassStatement
	KindSubStatement
	KindFunctionStatement
	KindPropertyStatement
	KindDeclareStatement
	KindEventStatement
	KindImplementsStatement
	KindDefTypeStatement
	KindDimStatement
	KindReDimStatement
	KindEraseStatement
	KindConstStatement
	KindTypeStatement
	KindEnumStatement
	KindIfStatement
	KindElseIfClause
	KindElseClause
	KindForStatement
	KindForEachStatement
	KindWhileStatement
	KindDoStatement
	KindSelectCaseStatement
	KindCaseClause
	KindCaseElseClause
	KindWithStatement
	KindCallStatement
	KindRaiseEventStatement
	KindSetStatement
	KindLetStatement
	KindAssignmentStatement
	KindGotoStatement
	KindGoSubStatement
	KindReturnStatement
	KindResumeStatement
	KindExitStatement
	KindOnErrorStatement
	KindOnGoToStatement
	KindOnGoSubStatement
	KindAppActivateStatement
	KindBeepStatement
	KindChDirStatement
	KindChDriveStatement
	KindCloseStatement
	KindDateStatement
	KindDeleteSettingStatement
	KindResetStatement
	KindSavePictureStatement
	KindSaveSettingStatement
	KindSeekStatement
	KindSendKeysStatement
	KindSetAttrStatement
	KindStopStatement
	KindTimeStatement
	KindRandomizeStatement
	KindErrorStatement
	KindFileCopyStatement
	KindGetStatement
	KindPutStatement
	KindInputStatement
	KindLineInputStatement
	KindKillStatement
	KindLoadStatement
	KindUnloadStatement
	KindLockStatement
	KindUnlockStatement
	KindLSetStatement
	KindRSetStatement
	KindMidStatement
	KindMidBStatement
	KindMkDirStatement
	KindRmDirStatement
	KindNameStatement
	KindOpenStatement
	KindPrintStatement
	KindWidthStatement
	KindWriteStatement
	KindLabelStatement
	KindAttributeStatement
	KindOptionStatement
	KindObjectStatement

	// Class and form header nodes.
	KindVersionStatement
	KindPropertiesBlock
	KindPropertyKey
	KindPropertyValue
	KindPropertyGroup

	// Expression nodes.
	KindBinaryExpression
	KindUnaryExpression
	KindLiteralExpression
	KindIdentifierExpression
	KindMemberAccessExpression
	KindCallExpression
	KindParenthesizedExpression
	KindAddressOfExpression
	KindTypeOfExpression
	KindNewExpression

	// Other structural nodes.
	KindArgumentList
	KindParameterList
	KindParameter
	KindArgument
	KindStatementList

	kindNodeEnd

	// Trivia tokens.
	KindWhitespace
	KindNewline
	KindEndOfLineComment
	KindRemComment

	// Keyword tokens.
	kindKeywordBegin
	KindAccessKeyword
	KindAddressOfKeyword
	KindAliasKeyword
	KindAndKeyword
	KindAnyKeyword
	KindAppActivateKeyword
	KindAppendKeyword
	KindAsKeyword
	KindAttributeKeyword
	KindBaseKeyword
	KindBeepKeyword
	KindBeginKeyword
	KindBinaryKeyword
	KindBooleanKeyword
	KindByRefKeyword
	KindByteKeyword
	KindByValKeyword
	KindCallKeyword
	KindCaseKeyword
	KindChDirKeyword
	KindChDriveKeyword
	KindClassKeyword
	KindCloseKeyword
	KindCompareKeyword
	KindConstKeyword
	KindCurrencyKeyword
	KindDatabaseKeyword
	KindDateKeyword
	KindDecimalKeyword
	KindDeclareKeyword
	KindDefBoolKeyword
	KindDefByteKeyword
	KindDefCurKeyword
	KindDefDateKeyword
	KindDefDblKeyword
	KindDefDecKeyword
	KindDefIntKeyword
	KindDefLngKeyword
	KindDefObjKeyword
	KindDefSngKeyword
	KindDefStrKeyword
	KindDefVarKeyword
	KindDeleteSettingKeyword
	KindDimKeyword
	KindDoKeyword
	KindDoubleKeyword
	KindEachKeyword
	KindElseIfKeyword
	KindElseKeyword
	KindEmptyKeyword
	KindEndKeyword
	KindEnumKeyword
	KindEqvKeyword
	KindEraseKeyword
	KindErrorKeyword
	KindEventKeyword
	KindExitKeyword
	KindExplicitKeyword
	KindFalseKeyword
	KindFileCopyKeyword
	KindForKeyword
	KindFriendKeyword
	KindFunctionKeyword
	KindGetKeyword
	KindGoSubKeyword
	KindGotoKeyword
	KindIfKeyword
	KindImplementsKeyword
	KindImpKeyword
	KindInKeyword
	KindInputKeyword
	KindIntegerKeyword
	KindIsKeyword
	KindKillKeyword
	KindLenKeyword
	KindLetKeyword
	KindLibKeyword
	KindLikeKeyword
	KindLineKeyword
	KindLoadKeyword
	KindLockKeyword
	KindLongKeyword
	KindLoopKeyword
	KindLSetKeyword
	KindMeKeyword
	KindMidBKeyword
	KindMidKeyword
	KindMkDirKeyword
	KindModKeyword
	KindModuleKeyword
	KindNameKeyword
	KindNewKeyword
	KindNextKeyword
	KindNothingKeyword
	KindNotKeyword
	KindNullKeyword
	KindObjectKeyword
	KindOffKeyword
	KindOnKeyword
	KindOpenKeyword
	KindOptionalKeyword
	KindOptionKeyword
	KindOrKeyword
	KindOutputKeyword
	KindParamArrayKeyword
	KindPreserveKeyword
	KindPrintKeyword
	KindPrivateKeyword
	KindPropertyKeyword
	KindPublicKeyword
	KindPutKeyword
	KindRaiseEventKeyword
	KindRandomizeKeyword
	KindRandomKeyword
	KindReadKeyword
	KindReDimKeyword
	KindResetKeyword
	KindResumeKeyword
	KindReturnKeyword
	KindRmDirKeyword
	KindRSetKeyword
	KindSavePictureKeyword
	KindSaveSettingKeyword
	KindSeekKeyword
	KindSelectKeyword
	KindSendKeysKeyword
	KindSetAttrKeyword
	KindSetKeyword
	KindSingleKeyword
	KindStaticKeyword
	KindStepKeyword
	KindStopKeyword
	KindStringKeyword
	KindSubKeyword
	KindTextKeyword
	KindThenKeyword
	KindTimeKeyword
	KindToKeyword
	KindTrueKeyword
	KindTypeKeyword
	KindTypeOfKeyword
	KindUnloadKeyword
	KindUnlockKeyword
	KindUntilKeyword
	KindVariantKeyword
	KindVersionKeyword
	KindWendKeyword
	KindWhileKeyword
	KindWidthKeyword
	KindWithEventsKeyword
	KindWithKeyword
	KindWriteKeyword
	KindXorKeyword
	kindKeywordEnd

	// Identifier and literal tokens.
	KindIdentifier
	KindStringLiteral
	KindIntegerLiteral
	KindLongLiteral
	KindSingleLiteral
	KindDoubleLiteral
	KindDecimalLiteral
	KindCurrencyLiteral
	KindDateLiteral

	// Operator and punctuation tokens.
	KindDollarSign
	KindUnderscore
	KindAmpersand
	KindPercent
	KindOctothorpe
	KindLeftParenthesis
	KindRightParenthesis
	KindLeftCurlyBrace
	KindRightCurlyBrace
	KindLeftSquareBracket
	KindRightSquareBracket
	KindComma
	KindSemicolon
	KindAtSign
	KindExclamationMark
	KindEqualityOperator
	KindInequalityOperator
	KindLessThanOrEqualOperator
	KindGreaterThanOrEqualOperator
	KindLessThanOperator
	KindGreaterThanOperator
	KindMultiplicationOperator
	KindSubtractionOperator
	KindAdditionOperator
	KindDivisionOperator
	KindBackwardSlashOperator
	KindPeriodOperator
	KindColonOperator
	KindExponentiationOperator

	// Unknown is emitted for single unclassifiable characters by the
	// tokenizer and for recovered token runs by the parser.
	KindUnknown
)

// IsNode reports whether the kind can own children. KindUnknown counts as
// both a node and a token kind.
func (k SyntaxKind) IsNode() bool {
	return k < kindNodeEnd || k == KindUnknown
}

// IsToken reports whether the kind is a leaf token kind.
func (k SyntaxKind) IsToken() bool {
	return k > kindNodeEnd
}

// IsTrivia reports whether the kind carries no grammatical significance:
// whitespace, newlines, and comments.
func (k SyntaxKind) IsTrivia() bool {
	switch k {
	case KindWhitespace, KindNewline, KindEndOfLineComment, KindRemComment:
		return true
	}
	return false
}

// IsKeyword reports whether the kind is a reserved word token.
func (k SyntaxKind) IsKeyword() bool {
	return k > kindKeywordBegin && k < kindKeywordEnd
}

// contextualKeywords lists the keyword kinds whose spellings are also legal
// identifiers. VB6 reserves only a core of its word tokens; the library
// statement and file-mode words double as ordinary variable, parameter, and
// member names depending on syntactic position.
var contextualKeywords = map[SyntaxKind]bool{
	KindAccessKeyword:        true,
	KindAliasKeyword:         true,
	KindAppActivateKeyword:   true,
	KindAppendKeyword:        true,
	KindBaseKeyword:          true,
	KindBeepKeyword:          true,
	KindBeginKeyword:         true,
	KindBinaryKeyword:        true,
	KindChDirKeyword:         true,
	KindChDriveKeyword:       true,
	KindClassKeyword:         true,
	KindCompareKeyword:       true,
	KindDatabaseKeyword:      true,
	KindDateKeyword:          true,
	KindDeleteSettingKeyword: true,
	KindErrorKeyword:         true,
	KindExplicitKeyword:      true,
	KindFileCopyKeyword:      true,
	KindInputKeyword:         true,
	KindKillKeyword:          true,
	KindLenKeyword:           true,
	KindLibKeyword:           true,
	KindLineKeyword:          true,
	KindLoadKeyword:          true,
	KindMidBKeyword:          true,
	KindMidKeyword:           true,
	KindMkDirKeyword:         true,
	KindModuleKeyword:        true,
	KindNameKeyword:          true,
	KindOffKeyword:           true,
	KindOutputKeyword:        true,
	KindRandomKeyword:        true,
	KindReadKeyword:          true,
	KindResetKeyword:         true,
	KindRmDirKeyword:         true,
	KindSavePictureKeyword:   true,
	KindSaveSettingKeyword:   true,
	KindSeekKeyword:          true,
	KindSendKeysKeyword:      true,
	KindSetAttrKeyword:       true,
	KindStepKeyword:          true,
	KindTextKeyword:          true,
	KindTimeKeyword:          true,
	KindUnloadKeyword:        true,
	KindVersionKeyword:       true,
	KindWidthKeyword:         true,
}

// IsContextual reports whether the kind is a keyword that is also a legal
// identifier spelling.
func (k SyntaxKind) IsContextual() bool {
	return contextualKeywords[k]
}

// IsIdentifierLike reports whether a token of this kind is acceptable
// wherever the grammar expects an identifier. Every identifier-accepting
// production consults this single predicate rather than special-casing
// individual spellings.
func (k SyntaxKind) IsIdentifierLike() bool {
	return k == KindIdentifier || k.IsContextual()
}
