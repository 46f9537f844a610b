package rt

// property is one insertion-ordered (key, value) pair of an object.
type property struct {
	key   string
	value Value
}

// Object is an insertion-ordered property list. Lookup is a linear scan by
// exact key equality; property counts are expected to be small.
type Object struct {
	props []property
}

func (o *Object) find(key string) int {
	for i := range o.props {
		if o.props[i].key == key {
			return i
		}
	}
	return -1
}

// ObjectSet stores a deep clone of v under key. Setting an existing key
// replaces the stored value in place rather than duplicating the key.
// Calling it on a non-object value is reported and ignored.
func ObjectSet(obj Value, key string, v Value) {
	if obj.Kind != VKObject || obj.Obj == nil {
		reportf("ObjectSet called on non-object value (%s)", obj.Kind)
		return
	}
	owned := Clone(v)
	if i := obj.Obj.find(key); i >= 0 {
		obj.Obj.props[i].value = owned
		return
	}
	obj.Obj.props = append(obj.Obj.props, property{key: key, value: owned})
}

// ObjectGet returns a deep clone of the value stored under key, or null
// when the key is absent or obj is not an object.
func ObjectGet(obj Value, key string) Value {
	if obj.Kind != VKObject || obj.Obj == nil {
		reportf("ObjectGet called on non-object value (%s)", obj.Kind)
		return MakeNull()
	}
	if i := obj.Obj.find(key); i >= 0 {
		return Clone(obj.Obj.props[i].value)
	}
	return MakeNull()
}

// ObjectKeys returns a new array of string clones of every key, in
// insertion order.
func ObjectKeys(obj Value) Value {
	if obj.Kind != VKObject || obj.Obj == nil {
		reportf("ObjectKeys called on non-object value (%s)", obj.Kind)
		return MakeArray(0)
	}
	keys := MakeArray(len(obj.Obj.props))
	for i := range obj.Obj.props {
		keys.Arr.push(MakeString(obj.Obj.props[i].key))
	}
	return keys
}
