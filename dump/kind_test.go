package dump

import (
	"reflect"
	"testing"

	"github.com/twitnic/lean/internal/testutil/testlog"
)

func TestClassify(t *testing.T) {
	testlog.Start(t)
	n := 7
	tests := []struct {
		name  string
		value any
		want  Kind
	}{
		{name: "nil", value: nil, want: KindNil},
		{name: "bool", value: true, want: KindBool},
		{name: "int", value: 1, want: KindInt},
		{name: "uint", value: uint(1), want: KindInt},
		{name: "float", value: 1.0, want: KindFloat},
		{name: "string", value: "s", want: KindString},
		{name: "slice", value: []int{1}, want: KindArray},
		{name: "array", value: [2]int{}, want: KindArray},
		{name: "map", value: map[string]int{}, want: KindArray},
		{name: "nil slice", value: []int(nil), want: KindNil},
		{name: "struct", value: Point{}, want: KindObject},
		{name: "pointer to struct", value: &Point{}, want: KindObject},
		{name: "nil pointer", value: (*Point)(nil), want: KindNil},
		{name: "pointer to scalar", value: &n, want: KindInt},
		{name: "channel", value: make(chan int), want: KindOther},
		{name: "complex", value: complex(1, 2), want: KindOther},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, got := classify(reflect.ValueOf(tc.value))
			if got != tc.want {
				t.Fatalf("unexpected kind: %s", got)
			}
		})
	}
}

func TestCompositeKinds(t *testing.T) {
	testlog.Start(t)
	if !composite(KindArray) || !composite(KindObject) {
		t.Fatalf("containers and objects are composite")
	}
	for _, k := range []Kind{KindNil, KindBool, KindInt, KindFloat, KindString, KindOther} {
		if composite(k) {
			t.Fatalf("%s must not be composite", k)
		}
	}
}
