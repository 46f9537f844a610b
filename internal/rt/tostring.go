package rt

import (
	"strconv"
	"strings"
)

// ToString converts any value to its display string: null/undefined/
// booleans by name, numbers in their shortest round-trippable decimal
// form, arrays as a recursive comma-joined [e1,e2,...] with no surrounding
// whitespace, objects as the placeholder "[object Object]".
func ToString(v Value) string {
	switch v.Kind {
	case VKNull:
		return "null"
	case VKUndefined:
		return "undefined"
	case VKBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case VKNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case VKString:
		return v.Str
	case VKArray:
		var b strings.Builder
		b.WriteByte('[')
		if v.Arr != nil {
			for i, e := range v.Arr.elems {
				if i > 0 {
					b.WriteByte(',')
				}
				b.WriteString(ToString(e))
			}
		}
		b.WriteByte(']')
		return b.String()
	case VKObject:
		return "[object Object]"
	default:
		return "[unknown type]"
	}
}
