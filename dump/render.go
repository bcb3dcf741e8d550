package dump

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

const indentUnit = "    "

const (
	propertiesHeader = "---! ::: PROPERTIES ::: !---"
	methodsHeader    = "---! ::: METHODS ::: !---"
	seenElsewhere    = " ::: AS SEEN ELSEWHERE. :::"
	nullLiteral      = "NULL"
	unreadableMark   = "<unreadable>"
)

// renderer is the recursive core. One instance serves one value of one render
// call; the cycle guard it holds is shared across the whole argument list and
// reset at argument boundaries by the session.
type renderer struct {
	sb             strings.Builder
	depth          int
	showMethods    bool
	sorted         bool
	showStringForm bool
	guard          *CycleGuard
}

func renderValue(v any, s *Session, guard *CycleGuard) string {
	r := renderer{
		depth:          s.depth,
		showMethods:    s.showMethods,
		sorted:         s.sorted,
		showStringForm: s.showStringForm,
		guard:          guard,
	}
	r.value(reflect.ValueOf(v), 1)
	return r.sb.String()
}

func (r *renderer) indent(n int) {
	for i := 0; i < n; i++ {
		r.sb.WriteString(indentUnit)
	}
}

// value renders one value at depth d. The root call is d = 1.
func (r *renderer) value(orig reflect.Value, d int) {
	v, kind := classify(orig)
	switch kind {
	case KindArray:
		r.container(v, d)
	case KindObject:
		r.object(orig, v, d)
	default:
		r.sb.WriteString(scalarLiteral(v, kind))
		r.sb.WriteString("\n")
	}
}

// child renders an entry or member value sitting at parent depth d. Scalars
// always render fully; composites recurse while depth remains and collapse to
// a one-line summary at the budget.
func (r *renderer) child(orig reflect.Value, d int) {
	v, kind := classify(orig)
	if !composite(kind) {
		r.sb.WriteString(scalarLiteral(v, kind))
		r.sb.WriteString("\n")
		return
	}
	if d < r.depth {
		r.value(orig, d+1)
		return
	}
	if kind == KindArray {
		fmt.Fprintf(&r.sb, "Array(%d)\n", v.Len())
		return
	}
	if s, ok := stringForm(v); ok {
		fmt.Fprintf(&r.sb, "Object(%s) '%s'(string:%d)\n", typeName(v), s, utf8.RuneCountInString(s))
		return
	}
	fmt.Fprintf(&r.sb, "Object(%s)\n", typeName(v))
}

func (r *renderer) container(v reflect.Value, d int) {
	fmt.Fprintf(&r.sb, "Array(%d)\n", v.Len())
	r.indent(d - 1)
	r.sb.WriteString("[\n")
	if v.Kind() == reflect.Map {
		type mapEntry struct {
			key string
			val reflect.Value
		}
		entries := make([]mapEntry, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			entries = append(entries, mapEntry{key: fmt.Sprint(iter.Key()), val: iter.Value()})
		}
		// Go maps have no insertion order; sorted keys keep output stable.
		slices.SortStableFunc(entries, func(a, b mapEntry) int {
			return strings.Compare(a.key, b.key)
		})
		for _, e := range entries {
			r.entry(e.key, e.val, d)
		}
	} else {
		for i := 0; i < v.Len(); i++ {
			r.entry(strconv.Itoa(i), v.Index(i), d)
		}
	}
	r.indent(d - 1)
	r.sb.WriteString("]\n")
}

func (r *renderer) entry(key string, val reflect.Value, d int) {
	r.indent(d)
	r.sb.WriteString(key)
	r.sb.WriteString(": ")
	r.child(val, d)
}

func (r *renderer) object(orig, v reflect.Value, d int) {
	name := typeName(v)
	if !r.guard.Enter(identityValue(orig)) {
		fmt.Fprintf(&r.sb, "Object(%s)%s\n", name, seenElsewhere)
		return
	}
	fmt.Fprintf(&r.sb, "Object(%s)\n", name)
	r.indent(d - 1)
	r.sb.WriteString("{\n")

	members := membersOf(orig, v)
	if r.sorted {
		slices.SortStableFunc(members, CompareMembers)
	}
	if len(members) > 0 {
		r.indent(d)
		r.sb.WriteString(propertiesHeader)
		r.sb.WriteString("\n")
		for _, m := range members {
			r.indent(d)
			r.sb.WriteString(m.Tier.Symbol())
			r.sb.WriteString(" ")
			r.sb.WriteString(m.Name)
			r.sb.WriteString(": ")
			if m.err != nil {
				r.sb.WriteString(unreadableMark)
				r.sb.WriteString("\n")
				continue
			}
			r.child(reflect.ValueOf(m.Value), d)
		}
	}

	if r.showMethods {
		methods := methodsOf(orig, v)
		if r.sorted {
			slices.SortStableFunc(methods, CompareMethods)
		}
		if len(methods) > 0 {
			r.indent(d)
			r.sb.WriteString(methodsHeader)
			r.sb.WriteString("\n")
			for _, m := range methods {
				r.indent(d)
				fmt.Fprintf(&r.sb, "%s %s\n", m.Tier.Symbol(), m.Name)
			}
		}
	}

	if r.showStringForm {
		if s, ok := stringForm(v); ok {
			r.indent(d)
			fmt.Fprintf(&r.sb, "this object to string: '%s'(string:%d)\n", s, utf8.RuneCountInString(s))
		}
	}

	r.indent(d - 1)
	r.sb.WriteString("}\n")
}

func scalarLiteral(v reflect.Value, kind Kind) string {
	switch kind {
	case KindNil:
		return nullLiteral
	case KindBool:
		if v.Bool() {
			return "true(bool)"
		}
		return "false(bool)"
	case KindString:
		s := v.String()
		return fmt.Sprintf("%s(string:%d)", s, utf8.RuneCountInString(s))
	case KindInt:
		return fmt.Sprintf("%v(integer)", v)
	case KindFloat:
		return fmt.Sprintf("%v(double)", v)
	}
	return fmt.Sprintf("%v(%s)", v, v.Kind())
}

func typeName(v reflect.Value) string {
	if name := v.Type().Name(); name != "" {
		return name
	}
	return v.Type().String()
}

// identityValue strips interface wrappers only, so pointer identity survives
// to the cycle guard.
func identityValue(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

func membersOf(orig, v reflect.Value) []Member {
	if s, ok := structuralOf(orig); ok {
		return s.StructuralMembers()
	}
	return structMembers(v)
}

func methodsOf(orig, v reflect.Value) []Method {
	if s, ok := structuralOf(orig); ok {
		return s.StructuralMethods()
	}
	if v.CanInterface() {
		return Methods(v.Interface())
	}
	return nil
}

func structuralOf(v reflect.Value) (Structural, bool) {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() || !v.CanInterface() {
		return nil, false
	}
	s, ok := v.Interface().(Structural)
	return s, ok
}
