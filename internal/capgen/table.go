package main

var capabilities = []Capability{
	// identity
	{Name: "Hash", Attr: "__hash__", Native: "hash"},

	// conversion
	{Name: "Str", Attr: "__str__", Native: "string"},
	{Name: "Repr", Attr: "__repr__", Native: "string"},
	{Name: "Bytes", Attr: "__bytes__", Native: "bytes"},
	{Name: "Format", Attr: "__format__", Args: []string{"spec"}, Native: "string"},
	{Name: "Bool", Attr: "__bool__", Native: "bool"},
	{Name: "Int", Attr: "__int__", Native: "bigint"},
	{Name: "Float", Attr: "__float__", Native: "float"},
	{Name: "Complex", Attr: "__complex__", Native: "complex"},
	{Name: "Index", Attr: "__index__", Native: "bigint"},
	{Name: "Round", Attr: "__round__", Args: []string{"ndigits"}, Optional: 1},

	// comparison
	{Name: "Eq", Attr: "__eq__", Args: []string{"other"}, Native: "bool", Compare: "CmpEq"},
	{Name: "Ne", Attr: "__ne__", Args: []string{"other"}, Native: "bool", Compare: "CmpNe"},
	{Name: "Lt", Attr: "__lt__", Args: []string{"other"}, Native: "bool", Compare: "CmpLt"},
	{Name: "Le", Attr: "__le__", Args: []string{"other"}, Native: "bool", Compare: "CmpLe"},
	{Name: "Gt", Attr: "__gt__", Args: []string{"other"}, Native: "bool", Compare: "CmpGt"},
	{Name: "Ge", Attr: "__ge__", Args: []string{"other"}, Native: "bool", Compare: "CmpGe"},

	// unary
	{Name: "Neg", Attr: "__neg__"},
	{Name: "Pos", Attr: "__pos__"},
	{Name: "Abs", Attr: "__abs__"},
	{Name: "Invert", Attr: "__invert__"},

	// arithmetic
	{Name: "Add", Attr: "__add__", Args: []string{"other"}, Numeric: "numAdd"},
	{Name: "Sub", Attr: "__sub__", Args: []string{"other"}, Numeric: "numSub"},
	{Name: "Mul", Attr: "__mul__", Args: []string{"other"}, Numeric: "numMul"},
	{Name: "MatMul", Attr: "__matmul__", Args: []string{"other"}},
	{Name: "TrueDiv", Attr: "__truediv__", Args: []string{"other"}, Numeric: "numTrueDiv"},
	{Name: "FloorDiv", Attr: "__floordiv__", Args: []string{"other"}, Numeric: "numFloorDiv"},
	{Name: "Mod", Attr: "__mod__", Args: []string{"other"}, Numeric: "numMod"},
	{Name: "DivMod", Attr: "__divmod__", Args: []string{"other"}, Numeric: "numDivMod"},
	{Name: "Pow", Attr: "__pow__", Args: []string{"other"}, Numeric: "numPow"},
	{Name: "LShift", Attr: "__lshift__", Args: []string{"other"}, Numeric: "numLShift"},
	{Name: "RShift", Attr: "__rshift__", Args: []string{"other"}, Numeric: "numRShift"},
	{Name: "And", Attr: "__and__", Args: []string{"other"}, Numeric: "numAnd"},
	{Name: "Xor", Attr: "__xor__", Args: []string{"other"}, Numeric: "numXor"},
	{Name: "Or", Attr: "__or__", Args: []string{"other"}, Numeric: "numOr"},

	// reflected
	{Name: "RAdd", Attr: "__radd__", Args: []string{"other"}, Numeric: "numAdd", Reflected: true},
	{Name: "RSub", Attr: "__rsub__", Args: []string{"other"}, Numeric: "numSub", Reflected: true},
	{Name: "RMul", Attr: "__rmul__", Args: []string{"other"}, Numeric: "numMul", Reflected: true},
	{Name: "RMatMul", Attr: "__rmatmul__", Args: []string{"other"}, Reflected: true},
	{Name: "RTrueDiv", Attr: "__rtruediv__", Args: []string{"other"}, Numeric: "numTrueDiv", Reflected: true},
	{Name: "RFloorDiv", Attr: "__rfloordiv__", Args: []string{"other"}, Numeric: "numFloorDiv", Reflected: true},
	{Name: "RMod", Attr: "__rmod__", Args: []string{"other"}, Numeric: "numMod", Reflected: true},
	{Name: "RDivMod", Attr: "__rdivmod__", Args: []string{"other"}, Numeric: "numDivMod", Reflected: true},
	{Name: "RPow", Attr: "__rpow__", Args: []string{"other"}, Numeric: "numPow", Reflected: true},
	{Name: "RLShift", Attr: "__rlshift__", Args: []string{"other"}, Numeric: "numLShift", Reflected: true},
	{Name: "RRShift", Attr: "__rrshift__", Args: []string{"other"}, Numeric: "numRShift", Reflected: true},
	{Name: "RAnd", Attr: "__rand__", Args: []string{"other"}, Numeric: "numAnd", Reflected: true},
	{Name: "RXor", Attr: "__rxor__", Args: []string{"other"}, Numeric: "numXor", Reflected: true},
	{Name: "ROr", Attr: "__ror__", Args: []string{"other"}, Numeric: "numOr", Reflected: true},

	// inplace
	{Name: "IAdd", Attr: "__iadd__", Args: []string{"other"}},
	{Name: "ISub", Attr: "__isub__", Args: []string{"other"}},
	{Name: "IMul", Attr: "__imul__", Args: []string{"other"}},
	{Name: "IMatMul", Attr: "__imatmul__", Args: []string{"other"}},
	{Name: "ITrueDiv", Attr: "__itruediv__", Args: []string{"other"}},
	{Name: "IFloorDiv", Attr: "__ifloordiv__", Args: []string{"other"}},
	{Name: "IMod", Attr: "__imod__", Args: []string{"other"}},
	{Name: "IPow", Attr: "__ipow__", Args: []string{"other"}},
	{Name: "ILShift", Attr: "__ilshift__", Args: []string{"other"}},
	{Name: "IRShift", Attr: "__irshift__", Args: []string{"other"}},
	{Name: "IAnd", Attr: "__iand__", Args: []string{"other"}},
	{Name: "IXor", Attr: "__ixor__", Args: []string{"other"}},
	{Name: "IOr", Attr: "__ior__", Args: []string{"other"}},

	// attribute
	{Name: "GetAttribute", Attr: "__getattribute__", Args: []string{"name"}},
	{Name: "GetAttr", Attr: "__getattr__", Args: []string{"name"}},
	{Name: "SetAttr", Attr: "__setattr__", Args: []string{"name", "value"}},
	{Name: "DelAttr", Attr: "__delattr__", Args: []string{"name"}},

	// container
	{Name: "Len", Attr: "__len__", Native: "int"},
	{Name: "LengthHint", Attr: "__length_hint__", Native: "int"},
	{Name: "Contains", Attr: "__contains__", Args: []string{"item"}, Native: "bool"},
	{Name: "Iter", Attr: "__iter__"},
	{Name: "Next", Attr: "__next__"},
	{Name: "Reversed", Attr: "__reversed__"},
	{Name: "GetItem", Attr: "__getitem__", Args: []string{"key"}},
	{Name: "SetItem", Attr: "__setitem__", Args: []string{"key", "value"}},
	{Name: "DelItem", Attr: "__delitem__", Args: []string{"key"}},
	{Name: "Call", Attr: "__call__", Variadic: true},

	// sequence
	{Name: "Count", Attr: "count", Args: []string{"item"}},
	{Name: "Append", Attr: "append", Args: []string{"item"}},
	{Name: "Extend", Attr: "extend", Args: []string{"items"}},
	{Name: "Insert", Attr: "insert", Args: []string{"index", "item"}},
	{Name: "Pop", Attr: "pop", Args: []string{"index"}, Optional: 1},
	{Name: "Remove", Attr: "remove", Args: []string{"item"}},
	{Name: "Reverse", Attr: "reverse"},
	{Name: "Clear", Attr: "clear"},
	{Name: "Copy", Attr: "copy"},

	// set
	{Name: "SetAdd", Attr: "add", Args: []string{"item"}},
	{Name: "Discard", Attr: "discard", Args: []string{"item"}},
	{Name: "IsDisjoint", Attr: "isdisjoint", Args: []string{"other"}, Native: "bool"},

	// mapping
	{Name: "Get", Attr: "get", Args: []string{"key", "fallback"}, Optional: 1},
	{Name: "Keys", Attr: "keys"},
	{Name: "Values", Attr: "values"},
	{Name: "Items", Attr: "items"},
	{Name: "PopItem", Attr: "popitem"},
	{Name: "Update", Attr: "update", Args: []string{"other"}},
	{Name: "SetDefault", Attr: "setdefault", Args: []string{"key", "fallback"}, Optional: 1},

	// string
	{Name: "Upper", Attr: "upper"},
	{Name: "Lower", Attr: "lower"},
	{Name: "Strip", Attr: "strip", Args: []string{"chars"}, Optional: 1},
	{Name: "Split", Attr: "split", Args: []string{"sep"}, Optional: 1},
	{Name: "Join", Attr: "join", Args: []string{"items"}},
	{Name: "StartsWith", Attr: "startswith", Args: []string{"prefix"}, Native: "bool"},
	{Name: "EndsWith", Attr: "endswith", Args: []string{"suffix"}, Native: "bool"},
	{Name: "Replace", Attr: "replace", Args: []string{"old", "repl"}},
	{Name: "Find", Attr: "find", Args: []string{"sub"}},

	// coroutine
	{Name: "Await", Attr: "__await__"},
	{Name: "Send", Attr: "send", Args: []string{"value"}},
	{Name: "Throw", Attr: "throw", Args: []string{"exc"}},
	{Name: "Close", Attr: "close"},

	// context
	{Name: "Enter", Attr: "__enter__"},
	{Name: "Exit", Attr: "__exit__", Args: []string{"excType", "excValue", "traceback"}},

	// descriptor
	{Name: "DescGet", Attr: "__get__", Args: []string{"instance", "owner"}, Optional: 1},
	{Name: "DescSet", Attr: "__set__", Args: []string{"instance", "value"}},
	{Name: "DescDelete", Attr: "__delete__", Args: []string{"instance"}},
	{Name: "DescSetName", Attr: "__set_name__", Args: []string{"owner", "name"}},
}
