package snekvm

type OpCode uint16

const (
	OpNop OpCode = iota
	OpPopTop
	OpRotTwo
	OpRotThree
	OpDupTop
	OpDupTopTwo
	OpPrintExpr

	OpUnaryPositive
	OpUnaryNegative
	OpUnaryNot
	OpUnaryInvert

	OpBinaryAdd
	OpBinarySubtract
	OpBinaryMultiply
	OpBinaryMatrixMultiply
	OpBinaryTrueDivide
	OpBinaryFloorDivide
	OpBinaryModulo
	OpBinaryPower
	OpBinaryLShift
	OpBinaryRShift
	OpBinaryAnd
	OpBinaryXor
	OpBinaryOr
	OpBinarySubscr

	OpInplaceAdd
	OpInplaceSubtract
	OpInplaceMultiply
	OpInplaceMatrixMultiply
	OpInplaceTrueDivide
	OpInplaceFloorDivide
	OpInplaceModulo
	OpInplacePower
	OpInplaceLShift
	OpInplaceRShift
	OpInplaceAnd
	OpInplaceXor
	OpInplaceOr

	OpStoreSubscr
	OpDeleteSubscr

	OpCompareEqual
	OpCompareNotEqual
	OpCompareLess
	OpCompareLessOrEqual
	OpCompareGreater
	OpCompareGreaterOrEqual
	OpCompareIn
	OpCompareNotIn
	OpCompareIs
	OpCompareIsNot
	OpCompareExceptionMatch

	OpLogicalAnd
	OpLogicalOr

	OpJumpAbsolute
	OpPopJumpIfFalse
	OpPopJumpIfTrue
	OpJumpIfFalseOrPop
	OpJumpIfTrueOrPop

	OpLoadConst
	OpLoadName
	OpStoreName
	OpDeleteName
	OpLoadFast
	OpStoreFast
	OpDeleteFast
	OpLoadGlobal
	OpStoreGlobal
	OpDeleteGlobal
	OpLoadAttr
	OpStoreAttr
	OpDeleteAttr
	OpImportName

	OpBuildTuple
	OpBuildList
	OpBuildSet
	OpBuildMap
	OpListAppend
	OpListExtend
	OpSetAdd
	OpMapAdd
	OpDictMerge
	OpUnpackSequence

	OpGetIter
	OpForIter

	OpMakeFunction
	OpCallFunction
	OpCallFunctionKw
	OpCallFunctionVarKw
	OpReturnValue

	OpSetupLoop
	OpBreakLoop
	OpContinueLoop
	OpSetupExcept
	OpSetupFinally
	OpSetupWith
	OpWithCleanup
	OpPopBlock
	OpPopExcept
	OpEndFinally
	OpRaiseVarargs

	OpAssertCondition
	OpSetLineNumber

	numOpCodes
)

var opNames = [numOpCodes]string{
	OpNop:                   "Nop",
	OpPopTop:                "PopTop",
	OpRotTwo:                "RotTwo",
	OpRotThree:              "RotThree",
	OpDupTop:                "DupTop",
	OpDupTopTwo:             "DupTopTwo",
	OpPrintExpr:             "PrintExpr",
	OpUnaryPositive:         "UnaryPositive",
	OpUnaryNegative:         "UnaryNegative",
	OpUnaryNot:              "UnaryNot",
	OpUnaryInvert:           "UnaryInvert",
	OpBinaryAdd:             "BinaryAdd",
	OpBinarySubtract:        "BinarySubtract",
	OpBinaryMultiply:        "BinaryMultiply",
	OpBinaryMatrixMultiply:  "BinaryMatrixMultiply",
	OpBinaryTrueDivide:      "BinaryTrueDivide",
	OpBinaryFloorDivide:     "BinaryFloorDivide",
	OpBinaryModulo:          "BinaryModulo",
	OpBinaryPower:           "BinaryPower",
	OpBinaryLShift:          "BinaryLShift",
	OpBinaryRShift:          "BinaryRShift",
	OpBinaryAnd:             "BinaryAnd",
	OpBinaryXor:             "BinaryXor",
	OpBinaryOr:              "BinaryOr",
	OpBinarySubscr:          "BinarySubscr",
	OpInplaceAdd:            "InplaceAdd",
	OpInplaceSubtract:       "InplaceSubtract",
	OpInplaceMultiply:       "InplaceMultiply",
	OpInplaceMatrixMultiply: "InplaceMatrixMultiply",
	OpInplaceTrueDivide:     "InplaceTrueDivide",
	OpInplaceFloorDivide:    "InplaceFloorDivide",
	OpInplaceModulo:         "InplaceModulo",
	OpInplacePower:          "InplacePower",
	OpInplaceLShift:         "InplaceLShift",
	OpInplaceRShift:         "InplaceRShift",
	OpInplaceAnd:            "InplaceAnd",
	OpInplaceXor:            "InplaceXor",
	OpInplaceOr:             "InplaceOr",
	OpStoreSubscr:           "StoreSubscr",
	OpDeleteSubscr:          "DeleteSubscr",
	OpCompareEqual:          "CompareEqual",
	OpCompareNotEqual:       "CompareNotEqual",
	OpCompareLess:           "CompareLess",
	OpCompareLessOrEqual:    "CompareLessOrEqual",
	OpCompareGreater:        "CompareGreater",
	OpCompareGreaterOrEqual: "CompareGreaterOrEqual",
	OpCompareIn:             "CompareIn",
	OpCompareNotIn:          "CompareNotIn",
	OpCompareIs:             "CompareIs",
	OpCompareIsNot:          "CompareIsNot",
	OpCompareExceptionMatch: "CompareExceptionMatch",
	OpLogicalAnd:            "LogicalAnd",
	OpLogicalOr:             "LogicalOr",
	OpJumpAbsolute:          "JumpAbsolute",
	OpPopJumpIfFalse:        "PopJumpIfFalse",
	OpPopJumpIfTrue:         "PopJumpIfTrue",
	OpJumpIfFalseOrPop:      "JumpIfFalseOrPop",
	OpJumpIfTrueOrPop:       "JumpIfTrueOrPop",
	OpLoadConst:             "LoadConst",
	OpLoadName:              "LoadName",
	OpStoreName:             "StoreName",
	OpDeleteName:            "DeleteName",
	OpLoadFast:              "LoadFast",
	OpStoreFast:             "StoreFast",
	OpDeleteFast:            "DeleteFast",
	OpLoadGlobal:            "LoadGlobal",
	OpStoreGlobal:           "StoreGlobal",
	OpDeleteGlobal:          "DeleteGlobal",
	OpLoadAttr:              "LoadAttr",
	OpStoreAttr:             "StoreAttr",
	OpDeleteAttr:            "DeleteAttr",
	OpImportName:            "ImportName",
	OpBuildTuple:            "BuildTuple",
	OpBuildList:             "BuildList",
	OpBuildSet:              "BuildSet",
	OpBuildMap:              "BuildMap",
	OpListAppend:            "ListAppend",
	OpListExtend:            "ListExtend",
	OpSetAdd:                "SetAdd",
	OpMapAdd:                "MapAdd",
	OpDictMerge:             "DictMerge",
	OpUnpackSequence:        "UnpackSequence",
	OpGetIter:               "GetIter",
	OpForIter:               "ForIter",
	OpMakeFunction:          "MakeFunction",
	OpCallFunction:          "CallFunction",
	OpCallFunctionKw:        "CallFunctionKw",
	OpCallFunctionVarKw:     "CallFunctionVarKw",
	OpReturnValue:           "ReturnValue",
	OpSetupLoop:             "SetupLoop",
	OpBreakLoop:             "BreakLoop",
	OpContinueLoop:          "ContinueLoop",
	OpSetupExcept:           "SetupExcept",
	OpSetupFinally:          "SetupFinally",
	OpSetupWith:             "SetupWith",
	OpWithCleanup:           "WithCleanup",
	OpPopBlock:              "PopBlock",
	OpPopExcept:             "PopExcept",
	OpEndFinally:            "EndFinally",
	OpRaiseVarargs:          "RaiseVarargs",
	OpAssertCondition:       "AssertCondition",
	OpSetLineNumber:         "SetLineNumber",
}

func (o OpCode) String() string {
	if o < numOpCodes {
		return opNames[o]
	}
	return "Unknown"
}

var opByName = func() map[string]OpCode {
	ret := make(map[string]OpCode, numOpCodes)
	for op, name := range opNames {
		ret[name] = OpCode(op)
	}
	return ret
}()

// ParseOpCode resolves an opcode by its name.
func ParseOpCode(name string) (OpCode, bool) {
	op, ok := opByName[name]
	return op, ok
}

// Jump reports whether the opcode transfers control inside a code unit.
func (o OpCode) Jump() bool {
	switch o {
	case OpJumpAbsolute, OpPopJumpIfFalse, OpPopJumpIfTrue,
		OpJumpIfFalseOrPop, OpJumpIfTrueOrPop, OpForIter,
		OpSetupLoop, OpBreakLoop, OpContinueLoop,
		OpSetupExcept, OpSetupFinally, OpSetupWith, OpWithCleanup,
		OpPopBlock, OpPopExcept, OpEndFinally, OpReturnValue:
		return true
	}
	return false
}
