package dump

import "reflect"

// Kind is the closed shape classification a value passes through exactly once
// before rendering. It is deliberately narrower than reflect.Kind: the
// renderer only distinguishes shapes it formats differently.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNil
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "integer"
	case KindFloat:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindOther:
		return "other"
	}
	return "invalid"
}

// classify unwraps interfaces and pointers and reports the shape of what
// remains. The returned value is the unwrapped one; callers that need pointer
// identity must keep the original.
func classify(v reflect.Value) (reflect.Value, Kind) {
	for {
		switch v.Kind() {
		case reflect.Invalid:
			return v, KindNil
		case reflect.Interface, reflect.Pointer:
			if v.IsNil() {
				return v, KindNil
			}
			v = v.Elem()
			continue
		}
		break
	}

	switch v.Kind() {
	case reflect.Bool:
		return v, KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v, KindInt
	case reflect.Float32, reflect.Float64:
		return v, KindFloat
	case reflect.String:
		return v, KindString
	case reflect.Slice, reflect.Array, reflect.Map:
		if v.Kind() != reflect.Array && v.IsNil() {
			return v, KindNil
		}
		return v, KindArray
	case reflect.Struct:
		return v, KindObject
	}
	return v, KindOther
}

// composite reports whether a kind recurses (and therefore consumes depth).
func composite(k Kind) bool {
	return k == KindArray || k == KindObject
}
