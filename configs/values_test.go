package configs

import (
	"slices"
	"testing"
)

func TestFirstOrder(t *testing.T) {
	if got := First[string](NewLoader([]string{"test.cue", "test2.cue"}, testSchema), "str"); got != "bar" {
		t.Fatalf("got %v", got)
	}
	if got := First[string](NewLoader([]string{"test2.cue", "test.cue"}, testSchema), "str"); got != "foo" {
		t.Fatalf("got %v", got)
	}
	if got := First[string](NewLoader([]string{"test.cue"}, testSchema), "not"); got != "" {
		t.Fatalf("got %v", got)
	}
}

func TestFirstMalformed(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)
	defer func() {
		if p := recover(); p == nil {
			t.Fatal("should panic")
		}
	}()
	First[int](loader, "str")
}

func TestAll(t *testing.T) {
	loader := NewLoader([]string{"test2.cue", "test.cue"}, testSchema)
	got := slices.Collect(All[string](loader, "str"))
	if !slices.Equal(got, []string{"foo", "bar"}) {
		t.Fatalf("got %v", got)
	}

	for str := range All[string](loader, "str") {
		if str != "foo" {
			t.Fatalf("got %v", str)
		}
		break
	}

	lists := NewLoader([]string{"test.cue"}, testSchema)
	if got := slices.Collect(All[[]int](lists, "list")); len(got) != 1 || !slices.Equal(got[0], []int{1, 2, 3}) {
		t.Fatalf("got %v", got)
	}
}
