package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero(0, 0, 3, 4); got != 3 {
		t.Fatalf("got %v", got)
	}
	if got := FirstNonZero[string](); got != "" {
		t.Fatalf("got %v", got)
	}
}

func TestDerefOrZero(t *testing.T) {
	if got := DerefOrZero[int](nil); got != 0 {
		t.Fatalf("got %v", got)
	}
	n := 42
	if got := DerefOrZero(&n); got != 42 {
		t.Fatalf("got %v", got)
	}
}

func TestParseBool(t *testing.T) {
	for str, want := range map[string]bool{
		"yes":  true,
		"On":   true,
		"1":    true,
		"no":   false,
		"":     false,
		"F":    false,
		"true": true,
	} {
		got, err := ParseBool(str)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("%q: got %v", str, got)
		}
	}
	if _, err := ParseBool("maybe"); err == nil {
		t.Fatal("should fail")
	}
}
