package parser

import (
	"strings"

	"github.com/dhamidi/vbparse/vb6"
)

// keywordKinds maps lowercased keyword spellings to their token kinds. VB6 is
// case-insensitive for keywords, so classification lowercases the scanned
// word before lookup.
var keywordKinds = map[string]SyntaxKind{
	"access":        KindAccessKeyword,
	"addressof":     KindAddressOfKeyword,
	"alias":         KindAliasKeyword,
	"and":           KindAndKeyword,
	"any":           KindAnyKeyword,
	"appactivate":   KindAppActivateKeyword,
	"append":        KindAppendKeyword,
	"as":            KindAsKeyword,
	"attribute":     KindAttributeKeyword,
	"base":          KindBaseKeyword,
	"beep":          KindBeepKeyword,
	"begin":         KindBeginKeyword,
	"binary":        KindBinaryKeyword,
	"boolean":       KindBooleanKeyword,
	"byref":         KindByRefKeyword,
	"byte":          KindByteKeyword,
	"byval":         KindByValKeyword,
	"call":          KindCallKeyword,
	"case":          KindCaseKeyword,
	"chdir":         KindChDirKeyword,
	"chdrive":       KindChDriveKeyword,
	"class":         KindClassKeyword,
	"close":         KindCloseKeyword,
	"compare":       KindCompareKeyword,
	"const":         KindConstKeyword,
	"currency":      KindCurrencyKeyword,
	"database":      KindDatabaseKeyword,
	"date":          KindDateKeyword,
	"decimal":       KindDecimalKeyword,
	"declare":       KindDeclareKeyword,
	"defbool":       KindDefBoolKeyword,
	"defbyte":       KindDefByteKeyword,
	"defcur":        KindDefCurKeyword,
	"defdate":       KindDefDateKeyword,
	"defdbl":        KindDefDblKeyword,
	"defdec":        KindDefDecKeyword,
	"defint":        KindDefIntKeyword,
	"deflng":        KindDefLngKeyword,
	"defobj":        KindDefObjKeyword,
	"defsng":        KindDefSngKeyword,
	"defstr":        KindDefStrKeyword,
	"defvar":        KindDefVarKeyword,
	"deletesetting": KindDeleteSettingKeyword,
	"dim":           KindDimKeyword,
	"do":            KindDoKeyword,
	"double":        KindDoubleKeyword,
	"each":          KindEachKeyword,
	"else":          KindElseKeyword,
	"elseif":        KindElseIfKeyword,
	"empty":         KindEmptyKeyword,
	"end":           KindEndKeyword,
	"enum":          KindEnumKeyword,
	"eqv":           KindEqvKeyword,
	"erase":         KindEraseKeyword,
	"error":         KindErrorKeyword,
	"event":         KindEventKeyword,
	"exit":          KindExitKeyword,
	"explicit":      KindExplicitKeyword,
	"false":         KindFalseKeyword,
	"filecopy":      KindFileCopyKeyword,
	"for":           KindForKeyword,
	"friend":        KindFriendKeyword,
	"function":      KindFunctionKeyword,
	"get":           KindGetKeyword,
	"gosub":         KindGoSubKeyword,
	"goto":          KindGotoKeyword,
	"if":            KindIfKeyword,
	"imp":           KindImpKeyword,
	"implements":    KindImplementsKeyword,
	"in":            KindInKeyword,
	"input":         KindInputKeyword,
	"integer":       KindIntegerKeyword,
	"is":            KindIsKeyword,
	"kill":          KindKillKeyword,
	"len":           KindLenKeyword,
	"let":           KindLetKeyword,
	"lib":           KindLibKeyword,
	"like":          KindLikeKeyword,
	"line":          KindLineKeyword,
	"load":          KindLoadKeyword,
	"lock":          KindLockKeyword,
	"long":          KindLongKeyword,
	"loop":          KindLoopKeyword,
	"lset":          KindLSetKeyword,
	"me":            KindMeKeyword,
	"mid":           KindMidKeyword,
	"midb":          KindMidBKeyword,
	"mkdir":         KindMkDirKeyword,
	"mod":           KindModKeyword,
	"module":        KindModuleKeyword,
	"name":          KindNameKeyword,
	"new":           KindNewKeyword,
	"next":          KindNextKeyword,
	"not":           KindNotKeyword,
	"nothing":       KindNothingKeyword,
	"null":          KindNullKeyword,
	"object":        KindObjectKeyword,
	"off":           KindOffKeyword,
	"on":            KindOnKeyword,
	"open":          KindOpenKeyword,
	"option":        KindOptionKeyword,
	"optional":      KindOptionalKeyword,
	"or":            KindOrKeyword,
	"output":        KindOutputKeyword,
	"paramarray":    KindParamArrayKeyword,
	"preserve":      KindPreserveKeyword,
	"print":         KindPrintKeyword,
	"private":       KindPrivateKeyword,
	"property":      KindPropertyKeyword,
	"public":        KindPublicKeyword,
	"put":           KindPutKeyword,
	"raiseevent":    KindRaiseEventKeyword,
	"random":        KindRandomKeyword,
	"randomize":     KindRandomizeKeyword,
	"read":          KindReadKeyword,
	"redim":         KindReDimKeyword,
	"reset":         KindResetKeyword,
	"resume":        KindResumeKeyword,
	"return":        KindReturnKeyword,
	"rmdir":         KindRmDirKeyword,
	"rset":          KindRSetKeyword,
	"savepicture":   KindSavePictureKeyword,
	"savesetting":   KindSaveSettingKeyword,
	"seek":          KindSeekKeyword,
	"select":        KindSelectKeyword,
	"sendkeys":      KindSendKeysKeyword,
	"set":           KindSetKeyword,
	"setattr":       KindSetAttrKeyword,
	"single":        KindSingleKeyword,
	"static":        KindStaticKeyword,
	"step":          KindStepKeyword,
	"stop":          KindStopKeyword,
	"string":        KindStringKeyword,
	"sub":           KindSubKeyword,
	"text":          KindTextKeyword,
	"then":          KindThenKeyword,
	"time":          KindTimeKeyword,
	"to":            KindToKeyword,
	"true":          KindTrueKeyword,
	"type":          KindTypeKeyword,
	"typeof":        KindTypeOfKeyword,
	"unload":        KindUnloadKeyword,
	"unlock":        KindUnlockKeyword,
	"until":         KindUntilKeyword,
	"variant":       KindVariantKeyword,
	"version":       KindVersionKeyword,
	"wend":          KindWendKeyword,
	"while":         KindWhileKeyword,
	"width":         KindWidthKeyword,
	"with":          KindWithKeyword,
	"withevents":    KindWithEventsKeyword,
	"write":         KindWriteKeyword,
	"xor":           KindXorKeyword,
}

// symbolKinds is scanned in order; multi-character operators come before
// their single-character prefixes so that "<=" never lexes as "<" "=".
var symbolKinds = []struct {
	text string
	kind SyntaxKind
}{
	{"<>", KindInequalityOperator},
	{"<=", KindLessThanOrEqualOperator},
	{">=", KindGreaterThanOrEqualOperator},
	{"=", KindEqualityOperator},
	{"<", KindLessThanOperator},
	{">", KindGreaterThanOperator},
	{"$", KindDollarSign},
	{"_", KindUnderscore},
	{"&", KindAmpersand},
	{"%", KindPercent},
	{"#", KindOctothorpe},
	{"(", KindLeftParenthesis},
	{")", KindRightParenthesis},
	{"{", KindLeftCurlyBrace},
	{"}", KindRightCurlyBrace},
	{"[", KindLeftSquareBracket},
	{"]", KindRightSquareBracket},
	{",", KindComma},
	{";", KindSemicolon},
	{"@", KindAtSign},
	{"!", KindExclamationMark},
	{"+", KindAdditionOperator},
	{"-", KindSubtractionOperator},
	{"*", KindMultiplicationOperator},
	{"\\", KindBackwardSlashOperator},
	{"/", KindDivisionOperator},
	{".", KindPeriodOperator},
	{":", KindColonOperator},
	{"^", KindExponentiationOperator},
}

func isIdentStart(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isIdentByte(b byte) bool {
	return isIdentStart(b) || b >= '0' && b <= '9' || b == '_'
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }

// Tokenize scans the stream into a flat token sequence until it is empty.
// It never fails: a character that matches no rule becomes a one-character
// Unknown token, which is what lets the parser make forward progress on
// arbitrary input.
func Tokenize(stream *vb6.SourceStream) []Token {
	var tokens []Token

	emit := func(kind SyntaxKind, start int, text string) {
		tokens = append(tokens, Token{Kind: kind, Start: start, End: start + len(text), Text: text})
	}

	for !stream.IsEmpty() {
		start := stream.Offset()

		if nl, ok := stream.TakeNewline(); ok {
			emit(KindNewline, start, nl)
			continue
		}

		if stream.PeekText("'", vb6.CaseSensitive) {
			emit(KindEndOfLineComment, start, stream.TakeUntilNewline())
			continue
		}

		if atRemComment(stream) {
			emit(KindRemComment, start, stream.TakeUntilNewline())
			continue
		}

		if stream.PeekText("\"", vb6.CaseSensitive) {
			emit(KindStringLiteral, start, takeStringLiteral(stream))
			continue
		}

		if text, ok := takeDateLiteral(stream); ok {
			emit(KindDateLiteral, start, text)
			continue
		}

		if ws := stream.TakeWhile(isSpaceOrTab); ws != "" {
			emit(KindWhitespace, start, ws)
			continue
		}

		if b := stream.Peek(1); b != "" && isIdentStart(b[0]) {
			word := stream.TakeWhile(isIdentByte)
			if kind, ok := keywordKinds[strings.ToLower(word)]; ok {
				emit(kind, start, word)
			} else {
				emit(KindIdentifier, start, word)
			}
			continue
		}

		if b := stream.Peek(1); b != "" && isDigit(b[0]) {
			text, kind := takeNumericLiteral(stream)
			emit(kind, start, text)
			continue
		}

		if text, kind, ok := takeSymbol(stream); ok {
			emit(kind, start, text)
			continue
		}

		emit(KindUnknown, start, stream.TakeCount(1))
	}

	return tokens
}

// atRemComment reports whether the stream is at a Rem comment: the word
// "Rem" on its own, not the prefix of an identifier like "Remainder".
func atRemComment(stream *vb6.SourceStream) bool {
	if !stream.PeekText("Rem", vb6.CaseInsensitive) {
		return false
	}
	next := stream.Peek(4)
	return len(next) < 4 || !isIdentByte(next[3])
}

// takeStringLiteral consumes a double-quote delimited string. An embedded
// quote is escaped by doubling it. An unterminated string ends at the
// newline or end of input and is still emitted as a StringLiteral token.
func takeStringLiteral(stream *vb6.SourceStream) string {
	start := stream.Offset()
	stream.Forward(1) // opening quote

	for !stream.IsEmpty() {
		if stream.PeekText(`""`, vb6.CaseSensitive) {
			stream.Forward(2)
			continue
		}
		if stream.PeekText(`"`, vb6.CaseSensitive) {
			stream.Forward(1)
			break
		}
		if stream.PeekNewline() != "" {
			break
		}
		stream.Forward(1)
	}

	return stream.Contents()[start:stream.Offset()]
}

// takeDateLiteral consumes a #-delimited date literal such as #1/1/2000# or
// #12:30:00 PM#. Date literals cannot span lines; without a closing # before
// the newline the scan rolls back and the # lexes as an Octothorpe symbol.
func takeDateLiteral(stream *vb6.SourceStream) (string, bool) {
	if !stream.PeekText("#", vb6.CaseSensitive) {
		return "", false
	}
	start := stream.Offset()
	end := start + 1
	contents := stream.Contents()
	for end < len(contents) {
		switch contents[end] {
		case '#':
			end++
			stream.Forward(end - start)
			return contents[start:end], true
		case '\r', '\n':
			return "", false
		}
		end++
	}
	return "", false
}

// takeNumericLiteral consumes a numeric literal and classifies it by its
// type suffix: % Integer, & Long, ! Single, # Double, @ Decimal. Without a
// suffix, a decimal point or exponent makes it a Single, otherwise Integer.
func takeNumericLiteral(stream *vb6.SourceStream) (string, SyntaxKind) {
	start := stream.Offset()
	contents := stream.Contents()

	stream.TakeWhile(isDigit)

	hasFraction := false
	if stream.PeekText(".", vb6.CaseSensitive) {
		rest := stream.Peek(2)
		if len(rest) == 2 && isDigit(rest[1]) {
			stream.Forward(1)
			stream.TakeWhile(isDigit)
			hasFraction = true
		}
	}

	hasExponent := false
	if stream.PeekText("E", vb6.CaseInsensitive) || stream.PeekText("D", vb6.CaseInsensitive) {
		rest := stream.Peek(3)
		if len(rest) >= 2 && (isDigit(rest[1]) || (rest[1] == '+' || rest[1] == '-') && len(rest) == 3 && isDigit(rest[2])) {
			stream.Forward(1)
			if stream.PeekText("+", vb6.CaseSensitive) || stream.PeekText("-", vb6.CaseSensitive) {
				stream.Forward(1)
			}
			stream.TakeWhile(isDigit)
			hasExponent = true
		}
	}

	kind := KindIntegerLiteral
	if hasFraction || hasExponent {
		kind = KindSingleLiteral
	}
	if suffix := stream.Peek(1); suffix != "" {
		switch suffix[0] {
		case '%':
			stream.Forward(1)
			kind = KindIntegerLiteral
		case '&':
			stream.Forward(1)
			kind = KindLongLiteral
		case '!':
			stream.Forward(1)
			kind = KindSingleLiteral
		case '#':
			stream.Forward(1)
			kind = KindDoubleLiteral
		case '@':
			stream.Forward(1)
			kind = KindDecimalLiteral
		}
	}

	return contents[start:stream.Offset()], kind
}

func takeSymbol(stream *vb6.SourceStream) (string, SyntaxKind, bool) {
	for _, sym := range symbolKinds {
		if text, ok := stream.Take(sym.text, vb6.CaseSensitive); ok {
			return text, sym.kind, true
		}
	}
	return "", KindUnknown, false
}
