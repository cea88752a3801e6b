package parser

var kindNames = map[SyntaxKind]string{
	KindRoot:                       "Root",
	KindModuleStatement:            "ModuleStatement",
	KindClassStatement:             "ClassStatement",
	KindSubStatement:               "SubStatement",
	KindFunctionStatement:          "FunctionStatement",
	KindPropertyStatement:          "PropertyStatement",
	KindDeclareStatement:           "DeclareStatement",
	KindEventStatement:             "EventStatement",
	KindImplementsStatement:        "ImplementsStatement",
	KindDefTypeStatement:           "DefTypeStatement",
	KindDimStatement:               "DimStatement",
	KindReDimStatement:             "ReDimStatement",
	KindEraseStatement:             "EraseStatement",
	KindConstStatement:             "ConstStatement",
	KindTypeStatement:              "TypeStatement",
	KindEnumStatement:              "EnumStatement",
	KindIfStatement:                "IfStatement",
	KindElseIfClause:               "ElseIfClause",
	KindElseClause:                 "ElseClause",
	KindForStatement:               "ForStatement",
	KindForEachStatement:           "ForEachStatement",
	KindWhileStatement:             "WhileStatement",
	KindDoStatement:                "DoStatement",
	KindSelectCaseStatement:        "SelectCaseStatement",
	KindCaseClause:                 "CaseClause",
	KindCaseElseClause:             "CaseElseClause",
	KindWithStatement:              "WithStatement",
	KindCallStatement:              "CallStatement",
	KindRaiseEventStatement:        "RaiseEventStatement",
	KindSetStatement:               "SetStatement",
	KindLetStatement:               "LetStatement",
	KindAssignmentStatement:        "AssignmentStatement",
	KindGotoStatement:              "GotoStatement",
	KindGoSubStatement:             "GoSubStatement",
	KindReturnStatement:            "ReturnStatement",
	KindResumeStatement:            "ResumeStatement",
	KindExitStatement:              "ExitStatement",
	KindOnErrorStatement:           "OnErrorStatement",
	KindOnGoToStatement:            "OnGoToStatement",
	KindOnGoSubStatement:           "OnGoSubStatement",
	KindAppActivateStatement:       "AppActivateStatement",
	KindBeepStatement:              "BeepStatement",
	KindChDirStatement:             "ChDirStatement",
	KindChDriveStatement:           "ChDriveStatement",
	KindCloseStatement:             "CloseStatement",
	KindDateStatement:              "DateStatement",
	KindDeleteSettingStatement:     "DeleteSettingStatement",
	KindResetStatement:             "ResetStatement",
	KindSavePictureStatement:       "SavePictureStatement",
	KindSaveSettingStatement:       "SaveSettingStatement",
	KindSeekStatement:              "SeekStatement",
	KindSendKeysStatement:          "SendKeysStatement",
	KindSetAttrStatement:           "SetAttrStatement",
	KindStopStatement:              "StopStatement",
	KindTimeStatement:              "TimeStatement",
	KindRandomizeStatement:         "RandomizeStatement",
	KindErrorStatement:             "ErrorStatement",
	KindFileCopyStatement:          "FileCopyStatement",
	KindGetStatement:               "GetStatement",
	KindPutStatement:               "PutStatement",
	KindInputStatement:             "InputStatement",
	KindLineInputStatement:         "LineInputStatement",
	KindKillStatement:              "KillStatement",
	KindLoadStatement:              "LoadStatement",
	KindUnloadStatement:            "UnloadStatement",
	KindLockStatement:              "LockStatement",
	KindUnlockStatement:            "UnlockStatement",
	KindLSetStatement:              "LSetStatement",
	KindRSetStatement:              "RSetStatement",
	KindMidStatement:               "MidStatement",
	KindMidBStatement:              "MidBStatement",
	KindMkDirStatement:             "MkDirStatement",
	KindRmDirStatement:             "RmDirStatement",
	KindNameStatement:              "NameStatement",
	KindOpenStatement:              "OpenStatement",
	KindPrintStatement:             "PrintStatement",
	KindWidthStatement:             "WidthStatement",
	KindWriteStatement:             "WriteStatement",
	KindLabelStatement:             "LabelStatement",
	KindAttributeStatement:         "AttributeStatement",
	KindOptionStatement:            "OptionStatement",
	KindObjectStatement:            "ObjectStatement",
	KindVersionStatement:           "VersionStatement",
	KindPropertiesBlock:            "PropertiesBlock",
	KindPropertyKey:                "PropertyKey",
	KindPropertyValue:              "PropertyValue",
	KindPropertyGroup:              "PropertyGroup",
	KindBinaryExpression:           "BinaryExpression",
	KindUnaryExpression:            "UnaryExpression",
	KindLiteralExpression:          "LiteralExpression",
	KindIdentifierExpression:       "IdentifierExpression",
	KindMemberAccessExpression:     "MemberAccessExpression",
	KindCallExpression:             "CallExpression",
	KindParenthesizedExpression:    "ParenthesizedExpression",
	KindAddressOfExpression:        "AddressOfExpression",
	KindTypeOfExpression:           "TypeOfExpression",
	KindNewExpression:              "NewExpression",
	KindArgumentList:               "ArgumentList",
	KindParameterList:              "ParameterList",
	KindParameter:                  "Parameter",
	KindArgument:                   "Argument",
	KindStatementList:              "StatementList",
	KindWhitespace:                 "Whitespace",
	KindNewline:                    "Newline",
	KindEndOfLineComment:           "EndOfLineComment",
	KindRemComment:                 "RemComment",
	KindAccessKeyword:              "AccessKeyword",
	KindAddressOfKeyword:           "AddressOfKeyword",
	KindAliasKeyword:               "AliasKeyword",
	KindAndKeyword:                 "AndKeyword",
	KindAnyKeyword:                 "AnyKeyword",
	KindAppActivateKeyword:         "AppActivateKeyword",
	KindAppendKeyword:              "AppendKeyword",
	KindAsKeyword:                  "AsKeyword",
	KindAttributeKeyword:           "AttributeKeyword",
	KindBaseKeyword:                "BaseKeyword",
	KindBeepKeyword:                "BeepKeyword",
	KindBeginKeyword:               "BeginKeyword",
	KindBinaryKeyword:              "BinaryKeyword",
	KindBooleanKeyword:             "BooleanKeyword",
	KindByRefKeyword:               "ByRefKeyword",
	KindByteKeyword:                "ByteKeyword",
	KindByValKeyword:               "ByValKeyword",
	KindCallKeyword:                "CallKeyword",
	KindCaseKeyword:                "CaseKeyword",
	KindChDirKeyword:               "ChDirKeyword",
	KindChDriveKeyword:             "ChDriveKeyword",
	KindClassKeyword:               "ClassKeyword",
	KindCloseKeyword:               "CloseKeyword",
	KindCompareKeyword:             "CompareKeyword",
	KindConstKeyword:               "ConstKeyword",
	KindCurrencyKeyword:            "CurrencyKeyword",
	KindDatabaseKeyword:            "DatabaseKeyword",
	KindDateKeyword:                "DateKeyword",
	KindDecimalKeyword:             "DecimalKeyword",
	KindDeclareKeyword:             "DeclareKeyword",
	KindDefBoolKeyword:             "DefBoolKeyword",
	KindDefByteKeyword:             "DefByteKeyword",
	KindDefCurKeyword:              "DefCurKeyword",
	KindDefDateKeyword:             "DefDateKeyword",
	KindDefDblKeyword:              "DefDblKeyword",
	KindDefDecKeyword:              "DefDecKeyword",
	KindDefIntKeyword:              "DefIntKeyword",
	KindDefLngKeyword:              "DefLngKeyword",
	KindDefObjKeyword:              "DefObjKeyword",
	KindDefSngKeyword:              "DefSngKeyword",
	KindDefStrKeyword:              "DefStrKeyword",
	KindDefVarKeyword:              "DefVarKeyword",
	KindDeleteSettingKeyword:       "DeleteSettingKeyword",
	KindDimKeyword:                 "DimKeyword",
	KindDoKeyword:                  "DoKeyword",
	KindDoubleKeyword:              "DoubleKeyword",
	KindEachKeyword:                "EachKeyword",
	KindElseIfKeyword:              "ElseIfKeyword",
	KindElseKeyword:                "ElseKeyword",
	KindEmptyKeyword:               "EmptyKeyword",
	KindEndKeyword:                 "EndKeyword",
	KindEnumKeyword:                "EnumKeyword",
	KindEqvKeyword:                 "EqvKeyword",
	KindEraseKeyword:               "EraseKeyword",
	KindErrorKeyword:               "ErrorKeyword",
	KindEventKeyword:               "EventKeyword",
	KindExitKeyword:                "ExitKeyword",
	KindExplicitKeyword:            "ExplicitKeyword",
	KindFalseKeyword:               "FalseKeyword",
	KindFileCopyKeyword:            "FileCopyKeyword",
	KindForKeyword:                 "ForKeyword",
	KindFriendKeyword:              "FriendKeyword",
	KindFunctionKeyword:            "FunctionKeyword",
	KindGetKeyword:                 "GetKeyword",
	KindGoSubKeyword:               "GoSubKeyword",
	KindGotoKeyword:                "GotoKeyword",
	KindIfKeyword:                  "IfKeyword",
	KindImplementsKeyword:          "ImplementsKeyword",
	KindImpKeyword:                 "ImpKeyword",
	KindInKeyword:                  "InKeyword",
	KindInputKeyword:               "InputKeyword",
	KindIntegerKeyword:             "IntegerKeyword",
	KindIsKeyword:                  "IsKeyword",
	KindKillKeyword:                "KillKeyword",
	KindLenKeyword:                 "LenKeyword",
	KindLetKeyword:                 "LetKeyword",
	KindLibKeyword:                 "LibKeyword",
	KindLikeKeyword:                "LikeKeyword",
	KindLineKeyword:                "LineKeyword",
	KindLoadKeyword:                "LoadKeyword",
	KindLockKeyword:                "LockKeyword",
	KindLongKeyword:                "LongKeyword",
	KindLoopKeyword:                "LoopKeyword",
	KindLSetKeyword:                "LSetKeyword",
	KindMeKeyword:                  "MeKeyword",
	KindMidBKeyword:                "MidBKeyword",
	KindMidKeyword:                 "MidKeyword",
	KindMkDirKeyword:               "MkDirKeyword",
	KindModKeyword:                 "ModKeyword",
	KindModuleKeyword:              "ModuleKeyword",
	KindNameKeyword:                "NameKeyword",
	KindNewKeyword:                 "NewKeyword",
	KindNextKeyword:                "NextKeyword",
	KindNothingKeyword:             "NothingKeyword",
	KindNotKeyword:                 "NotKeyword",
	KindNullKeyword:                "NullKeyword",
	KindObjectKeyword:              "ObjectKeyword",
	KindOffKeyword:                 "OffKeyword",
	KindOnKeyword:                  "OnKeyword",
	KindOpenKeyword:                "OpenKeyword",
	KindOptionalKeyword:            "OptionalKeyword",
	KindOptionKeyword:              "OptionKeyword",
	KindOrKeyword:                  "OrKeyword",
	KindOutputKeyword:              "OutputKeyword",
	KindParamArrayKeyword:          "ParamArrayKeyword",
	KindPreserveKeyword:            "PreserveKeyword",
	KindPrintKeyword:               "PrintKeyword",
	KindPrivateKeyword:             "PrivateKeyword",
	KindPropertyKeyword:            "PropertyKeyword",
	KindPublicKeyword:              "PublicKeyword",
	KindPutKeyword:                 "PutKeyword",
	KindRaiseEventKeyword:          "RaiseEventKeyword",
	KindRandomizeKeyword:           "RandomizeKeyword",
	KindRandomKeyword:              "RandomKeyword",
	KindReadKeyword:                "ReadKeyword",
	KindReDimKeyword:               "ReDimKeyword",
	KindResetKeyword:               "ResetKeyword",
	KindResumeKeyword:              "ResumeKeyword",
	KindReturnKeyword:              "ReturnKeyword",
	KindRmDirKeyword:               "RmDirKeyword",
	KindRSetKeyword:                "RSetKeyword",
	KindSavePictureKeyword:         "SavePictureKeyword",
	KindSaveSettingKeyword:         "SaveSettingKeyword",
	KindSeekKeyword:                "SeekKeyword",
	KindSelectKeyword:              "SelectKeyword",
	KindSendKeysKeyword:            "SendKeysKeyword",
	KindSetAttrKeyword:             "SetAttrKeyword",
	KindSetKeyword:                 "SetKeyword",
	KindSingleKeyword:              "SingleKeyword",
	KindStaticKeyword:              "StaticKeyword",
	KindStepKeyword:                "StepKeyword",
	KindStopKeyword:                "StopKeyword",
	KindStringKeyword:              "StringKeyword",
	KindSubKeyword:                 "SubKeyword",
	KindTextKeyword:                "TextKeyword",
	KindThenKeyword:                "ThenKeyword",
	KindTimeKeyword:                "TimeKeyword",
	KindToKeyword:                  "ToKeyword",
	KindTrueKeyword:                "TrueKeyword",
	KindTypeKeyword:                "TypeKeyword",
	KindTypeOfKeyword:              "TypeOfKeyword",
	KindUnloadKeyword:              "UnloadKeyword",
	KindUnlockKeyword:              "UnlockKeyword",
	KindUntilKeyword:               "UntilKeyword",
	KindVariantKeyword:             "VariantKeyword",
	KindVersionKeyword:             "VersionKeyword",
	KindWendKeyword:                "WendKeyword",
	KindWhileKeyword:               "WhileKeyword",
	KindWidthKeyword:               "WidthKeyword",
	KindWithEventsKeyword:          "WithEventsKeyword",
	KindWithKeyword:                "WithKeyword",
	KindWriteKeyword:               "WriteKeyword",
	KindXorKeyword:                 "XorKeyword",
	KindIdentifier:                 "Identifier",
	KindStringLiteral:              "StringLiteral",
	KindIntegerLiteral:             "IntegerLiteral",
	KindLongLiteral:                "LongLiteral",
	KindSingleLiteral:              "SingleLiteral",
	KindDoubleLiteral:              "DoubleLiteral",
	KindDecimalLiteral:             "DecimalLiteral",
	KindCurrencyLiteral:            "CurrencyLiteral",
	KindDateLiteral:                "DateLiteral",
	KindDollarSign:                 "DollarSign",
	KindUnderscore:                 "Underscore",
	KindAmpersand:                  "Ampersand",
	KindPercent:                    "Percent",
	KindOctothorpe:                 "Octothorpe",
	KindLeftParenthesis:            "LeftParenthesis",
	KindRightParenthesis:           "RightParenthesis",
	KindLeftCurlyBrace:             "LeftCurlyBrace",
	KindRightCurlyBrace:            "RightCurlyBrace",
	KindLeftSquareBracket:          "LeftSquareBracket",
	KindRightSquareBracket:         "RightSquareBracket",
	KindComma:                      "Comma",
	KindSemicolon:                  "Semicolon",
	KindAtSign:                     "AtSign",
	KindExclamationMark:            "ExclamationMark",
	KindEqualityOperator:           "EqualityOperator",
	KindInequalityOperator:         "InequalityOperator",
	KindLessThanOrEqualOperator:    "LessThanOrEqualOperator",
	KindGreaterThanOrEqualOperator: "GreaterThanOrEqualOperator",
	KindLessThanOperator:           "LessThanOperator",
	KindGreaterThanOperator:        "GreaterThanOperator",
	KindMultiplicationOperator:     "MultiplicationOperator",
	KindSubtractionOperator:        "SubtractionOperator",
	KindAdditionOperator:           "AdditionOperator",
	KindDivisionOperator:           "DivisionOperator",
	KindBackwardSlashOperator:      "BackwardSlashOperator",
	KindPeriodOperator:             "PeriodOperator",
	KindColonOperator:              "ColonOperator",
	KindExponentiationOperator:     "ExponentiationOperator",
	KindUnknown:                    "Unknown",
}

// String returns the kind's name, e.g. "DoStatement" or "UntilKeyword".
func (k SyntaxKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
