// Package rt implements the SmashLang runtime value model, the promise
// state machine and the asynchronous adapters built on top of it.
//
// Values follow a strict no-aliasing discipline: every store into a
// container and every accessor read deep-clones, so no container ever
// aliases a Value owned elsewhere and nothing is shared across the
// settlement boundary of a promise.
package rt

import "fmt"

// ValueKind identifies the runtime type of a Value.
type ValueKind uint8

const (
	// VKNull represents the null value.
	VKNull ValueKind = iota
	// VKUndefined represents the undefined value.
	VKUndefined
	// VKBool represents a boolean value.
	VKBool
	// VKNumber represents a double-precision number value.
	VKNumber
	// VKString represents a string value.
	VKString
	// VKArray represents an array value.
	VKArray
	// VKObject represents an object value.
	VKObject
	// VKPromise represents a promise value.
	VKPromise
	// VKFunc represents a function value.
	VKFunc
)

// String returns a human-readable name for the value kind.
func (k ValueKind) String() string {
	switch k {
	case VKNull:
		return "null"
	case VKUndefined:
		return "undefined"
	case VKBool:
		return "boolean"
	case VKNumber:
		return "number"
	case VKString:
		return "string"
	case VKArray:
		return "array"
	case VKObject:
		return "object"
	case VKPromise:
		return "promise"
	case VKFunc:
		return "function"
	default:
		return fmt.Sprintf("ValueKind(%d)", k)
	}
}

// Func is the callable payload of a function value. The receiver is passed
// explicitly; captured state lives in the closure itself.
type Func func(this Value, args []Value) Value

// Value is the tagged runtime representation of every dynamic datum.
// Invariant: the kind always matches the live payload field; no payload is
// read through the wrong kind.
type Value struct {
	Kind ValueKind
	Bool bool     // for VKBool
	Num  float64  // for VKNumber
	Str  string   // for VKString
	Arr  *Array   // for VKArray
	Obj  *Object  // for VKObject
	Prom *Promise // for VKPromise
	Fn   Func     // for VKFunc
}

// MakeNull creates a null value.
func MakeNull() Value {
	return Value{Kind: VKNull}
}

// MakeUndefined creates an undefined value.
func MakeUndefined() Value {
	return Value{Kind: VKUndefined}
}

// MakeBool creates a boolean value.
func MakeBool(b bool) Value {
	return Value{Kind: VKBool, Bool: b}
}

// MakeNumber creates a number value.
func MakeNumber(n float64) Value {
	return Value{Kind: VKNumber, Num: n}
}

// MakeString creates a string value holding its own copy of s.
func MakeString(s string) Value {
	return Value{Kind: VKString, Str: s}
}

// MakeArray creates an empty array value with the given initial capacity.
// Non-positive capacities fall back to the default.
func MakeArray(capacity int) Value {
	return Value{Kind: VKArray, Arr: newArray(capacity)}
}

// MakeObject creates an empty object value.
func MakeObject() Value {
	return Value{Kind: VKObject, Obj: &Object{}}
}

// MakePromise wraps a promise cell in a value.
func MakePromise(p *Promise) Value {
	return Value{Kind: VKPromise, Prom: p}
}

// MakeFunc creates a function value.
func MakeFunc(fn Func) Value {
	return Value{Kind: VKFunc, Fn: fn}
}

// IsTruthy reports the truthiness of a value: null and undefined are false,
// booleans are themselves, numbers are true when nonzero, strings and
// arrays when nonempty; objects, functions and promises are always true.
func IsTruthy(v Value) bool {
	switch v.Kind {
	case VKNull, VKUndefined:
		return false
	case VKBool:
		return v.Bool
	case VKNumber:
		return v.Num != 0
	case VKString:
		return len(v.Str) > 0
	case VKArray:
		return v.Arr != nil && v.Arr.size() > 0
	default:
		return true
	}
}

// LogicalNot returns the boolean negation of IsTruthy.
func LogicalNot(v Value) Value {
	return MakeBool(!IsTruthy(v))
}
