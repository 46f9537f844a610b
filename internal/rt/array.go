package rt

const defaultArrayCapacity = 4

// Array is a resizable sequence of owned values with amortized-doubling
// growth. Indices [0, size) are valid and owned by the array exclusively.
type Array struct {
	elems []Value
}

func newArray(capacity int) *Array {
	if capacity <= 0 {
		capacity = defaultArrayCapacity
	}
	return &Array{elems: make([]Value, 0, capacity)}
}

func (a *Array) size() int {
	if a == nil {
		return 0
	}
	return len(a.elems)
}

// push appends an already-owned value, doubling capacity on overflow.
func (a *Array) push(v Value) {
	if len(a.elems) == cap(a.elems) {
		newCap := cap(a.elems) * 2
		if newCap == 0 {
			newCap = defaultArrayCapacity
		}
		grown := make([]Value, len(a.elems), newCap)
		copy(grown, a.elems)
		a.elems = grown
	}
	a.elems = append(a.elems, v)
}

// ArrayPush appends a deep clone of elem to arr. Calling it on a non-array
// value is reported to the error stream and ignored.
func ArrayPush(arr, elem Value) {
	if arr.Kind != VKArray || arr.Arr == nil {
		reportf("ArrayPush called on non-array value (%s)", arr.Kind)
		return
	}
	arr.Arr.push(Clone(elem))
}

// ArrayLength returns the element count, or 0 (with a diagnostic) for a
// non-array value.
func ArrayLength(arr Value) int {
	if arr.Kind != VKArray || arr.Arr == nil {
		reportf("ArrayLength called on non-array value (%s)", arr.Kind)
		return 0
	}
	return arr.Arr.size()
}

// ArrayGet returns a deep clone of the element at index. Out-of-range
// indices and non-array inputs are reported and degrade to null.
func ArrayGet(arr Value, index int) Value {
	if arr.Kind != VKArray || arr.Arr == nil {
		reportf("ArrayGet called on non-array value (%s)", arr.Kind)
		return MakeNull()
	}
	if index < 0 || index >= arr.Arr.size() {
		reportf("array index %d out of bounds (size %d)", index, arr.Arr.size())
		return MakeNull()
	}
	return Clone(arr.Arr.elems[index])
}
