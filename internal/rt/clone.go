package rt

// Clone produces a fully independent deep copy of v: arrays and objects
// recursively duplicate every contained value. Strings are immutable in Go,
// so the value copy is already independent. Promise and function payloads
// are shared by the clone: a promise is a settlement cell and a function is
// code, neither has duplicable state.
func Clone(v Value) Value {
	switch v.Kind {
	case VKArray:
		if v.Arr == nil {
			return MakeArray(0)
		}
		out := newArray(len(v.Arr.elems))
		for _, e := range v.Arr.elems {
			out.push(Clone(e))
		}
		return Value{Kind: VKArray, Arr: out}
	case VKObject:
		if v.Obj == nil {
			return MakeObject()
		}
		out := &Object{props: make([]property, 0, len(v.Obj.props))}
		for _, p := range v.Obj.props {
			out.props = append(out.props, property{key: p.key, value: Clone(p.value)})
		}
		return Value{Kind: VKObject, Obj: out}
	default:
		return v
	}
}
