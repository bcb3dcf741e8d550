package dump

import (
	"reflect"
	"testing"

	"github.com/twitnic/lean/internal/testutil/testlog"
)

type guardProbe struct {
	N int
}

func TestCycleGuardEnterByIdentity(t *testing.T) {
	testlog.Start(t)
	g := NewCycleGuard()

	a := &guardProbe{N: 1}
	b := &guardProbe{N: 1} // equal contents, distinct identity

	if !g.Enter(reflect.ValueOf(a)) {
		t.Fatalf("first visit must register")
	}
	if g.Enter(reflect.ValueOf(a)) {
		t.Fatalf("second visit of same identity must be rejected")
	}
	if !g.Enter(reflect.ValueOf(b)) {
		t.Fatalf("equal contents must never conflate identities")
	}
}

func TestCycleGuardValueObjectsHaveNoIdentity(t *testing.T) {
	testlog.Start(t)
	g := NewCycleGuard()

	v := guardProbe{N: 2}
	if !g.Enter(reflect.ValueOf(v)) {
		t.Fatalf("value object must always register")
	}
	if !g.Enter(reflect.ValueOf(v)) {
		t.Fatalf("value objects are copies and cannot repeat")
	}
}

func TestCycleGuardReset(t *testing.T) {
	testlog.Start(t)
	g := NewCycleGuard()
	a := &guardProbe{N: 3}

	if !g.Enter(reflect.ValueOf(a)) {
		t.Fatalf("first visit must register")
	}
	g.Reset()
	if !g.Enter(reflect.ValueOf(a)) {
		t.Fatalf("reset must clear registered identities")
	}
}
