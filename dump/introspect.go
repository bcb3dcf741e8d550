package dump

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/rs/zerolog/log"
)

// Structural lets a type take over its own enumeration instead of going
// through reflection. It is the only way to expose members reflection cannot
// see, such as a protected method tier.
type Structural interface {
	StructuralMembers() []Member
	StructuralMethods() []Method
}

// Members enumerates the data members of v: its own fields in declaration
// order, then fields of embedded types, deduplicated by name with the
// outermost declaration winning. Unexported values are read for diagnostic
// purposes; nothing is ever mutated.
func Members(v any) []Member {
	if s, ok := v.(Structural); ok {
		return s.StructuralMembers()
	}
	rv, kind := classify(reflect.ValueOf(v))
	if kind != KindObject {
		return nil
	}
	return structMembers(rv)
}

// Methods enumerates the callable members of v. Reflection only surfaces
// exported methods, so everything here is public unless the type implements
// Structural.
func Methods(v any) []Method {
	if s, ok := v.(Structural); ok {
		return s.StructuralMethods()
	}
	t := reflect.TypeOf(v)
	if t == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var out []Method
	appendMethods(t, seen, &out)
	if t.Kind() != reflect.Pointer {
		appendMethods(reflect.PointerTo(t), seen, &out)
	}
	return out
}

func appendMethods(t reflect.Type, seen map[string]struct{}, out *[]Method) {
	for i := 0; i < t.NumMethod(); i++ {
		name := t.Method(i).Name
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		*out = append(*out, Method{Name: name, Tier: TierPublic})
	}
}

func structMembers(rv reflect.Value) []Member {
	// Unexported reads need an addressable value.
	if !rv.CanAddr() {
		cp := reflect.New(rv.Type()).Elem()
		cp.Set(rv)
		rv = cp
	}
	var out []Member
	collectMembers(rv, &out, make(map[string]struct{}))
	return out
}

func collectMembers(rv reflect.Value, out *[]Member, seen map[string]struct{}) {
	t := rv.Type()
	var embedded []reflect.Value
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tier, visible := tierForField(f)
		if !visible {
			continue
		}
		fv, err := readField(rv, i)
		if err == nil && f.Anonymous {
			if ev, kind := classify(fv); kind == KindObject {
				embedded = append(embedded, ev)
				continue
			}
		}
		if _, dup := seen[f.Name]; dup {
			continue
		}
		seen[f.Name] = struct{}{}
		m := Member{Name: f.Name, Tier: tier}
		if err != nil {
			m.err = err
			log.Debug().Err(err).Str("member", f.Name).Msg("dump: member unreadable")
		} else {
			m.Value = fv.Interface()
		}
		*out = append(*out, m)
	}
	// Embedded types are the ancestor chain; a name already collected above
	// shadows any ancestor declaration.
	for _, ev := range embedded {
		collectMembers(ev, out, seen)
	}
}

// readField reads field i of rv, bypassing export restrictions without
// changing anything about the field itself.
func readField(rv reflect.Value, i int) (reflect.Value, error) {
	f := rv.Type().Field(i)
	fv := rv.Field(i)
	if f.IsExported() {
		return fv, nil
	}
	if !fv.CanAddr() {
		return reflect.Value{}, fmt.Errorf("dump: member %s is not addressable", f.Name)
	}
	return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem(), nil
}

// stringForm reports the value's custom string representation, if it has one.
func stringForm(v reflect.Value) (string, bool) {
	if !v.IsValid() || !v.CanInterface() {
		return "", false
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String(), true
	}
	if v.CanAddr() && v.Addr().CanInterface() {
		if s, ok := v.Addr().Interface().(fmt.Stringer); ok {
			return s.String(), true
		}
	}
	return "", false
}
