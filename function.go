package irtypes

// FunctionType is a function signature: return type, ordered parameters,
// and a variadic flag. Function types are never sized.
type FunctionType struct{ handle }

// ReturnType returns the classified return type.
func (t FunctionType) ReturnType() Type {
	return Classify(t.tab, t.tab.ReturnType(t.ref))
}

// IsVarArg reports whether the signature accepts trailing variadic
// arguments.
func (t FunctionType) IsVarArg() bool {
	return t.tab.IsFunctionVarArg(t.ref)
}

// ParamCount reports the parameter arity.
func (t FunctionType) ParamCount() int {
	return t.tab.ParamCount(t.ref)
}

// Params returns the parameter types exactly in construction order.
func (t FunctionType) Params() []Type {
	return children(t.tab, t.ParamCount(), func(buf []TypeRef) {
		t.tab.ParamTypes(t.ref, buf)
	})
}
