package dump

import (
	"reflect"
	"strings"
)

// Tier classifies a structural member. Ordering is total:
// Public < Protected < Private, name-lexicographic within a tier.
type Tier uint8

const (
	TierPublic Tier = iota
	TierProtected
	TierPrivate
)

func (t Tier) Symbol() string {
	switch t {
	case TierPublic:
		return "+"
	case TierProtected:
		return "#"
	}
	return "-"
}

func (t Tier) String() string {
	switch t {
	case TierPublic:
		return "public"
	case TierProtected:
		return "protected"
	}
	return "private"
}

// Member is one data member of an object: name, tier, current value.
type Member struct {
	Name  string
	Tier  Tier
	Value any

	// err marks a member whose value could not be read; it renders as a
	// placeholder instead of aborting the dump.
	err error
}

// Method is one callable member of an object.
type Method struct {
	Name string
	Tier Tier
}

// CompareMembers orders tier-major, then name-minor. It is total over all
// member pairs, so sorting with it is deterministic.
func CompareMembers(a, b Member) int {
	if a.Tier != b.Tier {
		return int(a.Tier) - int(b.Tier)
	}
	return strings.Compare(a.Name, b.Name)
}

// CompareMethods mirrors CompareMembers for callables.
func CompareMethods(a, b Method) int {
	if a.Tier != b.Tier {
		return int(a.Tier) - int(b.Tier)
	}
	return strings.Compare(a.Name, b.Name)
}

// tierForField maps a struct field to its tier. Exported fields are public,
// unexported ones private; a `dump` tag overrides either way. The second
// result is false when the field is hidden with `dump:"-"`.
func tierForField(f reflect.StructField) (Tier, bool) {
	tier := TierPrivate
	if f.IsExported() {
		tier = TierPublic
	}
	switch f.Tag.Get("dump") {
	case "":
		return tier, true
	case "-":
		return tier, false
	case "public":
		return TierPublic, true
	case "protected":
		return TierProtected, true
	case "private":
		return TierPrivate, true
	}
	return tier, true
}
