package laxjson

import (
	"errors"
	"testing"
)

func TestKeyOnNonObject(t *testing.T) {
	t.Parallel()

	root := ParseText([]byte(`{"n": 1}`))
	n, _ := root.Key("n")

	if _, err := n.Key("x"); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Key on Number error = %v, want ErrOutOfRange", err)
	}
}

func TestKeyCreatesAbsentChild(t *testing.T) {
	t.Parallel()

	root := ParseText([]byte(`{}`))

	created, err := root.Key("fresh")
	if err != nil {
		t.Fatalf("Key(fresh) error = %v", err)
	}
	if !created.IsNull() {
		t.Fatalf("created.Kind() = %s, want Null", created.Kind())
	}

	again, err := root.Key("fresh")
	if err != nil {
		t.Fatalf("Key(fresh) error = %v", err)
	}
	if created != again {
		t.Fatal("repeated Key returned a different child")
	}
}

func TestIndexBounds(t *testing.T) {
	t.Parallel()

	root := ParseText([]byte(`{"list": [1, 2]}`))
	list, _ := root.Key("list")

	for i := 0; i < 2; i++ {
		if _, err := list.Index(i); err != nil {
			t.Fatalf("Index(%d) error = %v", i, err)
		}
	}

	for _, i := range []int{-1, 2} {
		if _, err := list.Index(i); !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("Index(%d) error = %v, want ErrOutOfRange", i, err)
		}
	}

	if _, err := root.Index(0); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Index on Object error = %v, want ErrOutOfRange", err)
	}
}

func TestTypedAccessorsMismatch(t *testing.T) {
	t.Parallel()

	root := ParseText([]byte(`{"s": "x", "b": true, "n": 2}`))

	s, _ := root.Key("s")
	b, _ := root.Key("b")
	n, _ := root.Key("n")

	if _, err := s.Bool(); !errors.Is(err, ErrBadType) {
		t.Fatalf("Bool on String error = %v, want ErrBadType", err)
	}
	if _, err := b.Number(); !errors.Is(err, ErrBadType) {
		t.Fatalf("Number on Boolean error = %v, want ErrBadType", err)
	}
	if _, err := n.Text(); !errors.Is(err, ErrBadType) {
		t.Fatalf("Text on Number error = %v, want ErrBadType", err)
	}
}

func TestLeafMutationThroughAccessor(t *testing.T) {
	t.Parallel()

	root := ParseText([]byte(`{"greeting": "hi"}`))
	greeting, _ := root.Key("greeting")

	s, err := greeting.Text()
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	*s = "bye"

	want := "{\n    \"greeting\": \"bye\",\n},"
	if got := Dump(root, 0); got != want {
		t.Fatalf("Dump = %q, want %q", got, want)
	}
}

func TestKindPredicatesAreTotal(t *testing.T) {
	t.Parallel()

	root := ParseText([]byte(`{"s": "x", "b": true, "n": 2, "z": null, "a": [], "o": {}}`))

	tests := []struct {
		key  string
		kind Kind
	}{
		{"s", KindString},
		{"b", KindBoolean},
		{"n", KindNumber},
		{"z", KindNull},
		{"a", KindArray},
		{"o", KindObject},
	}

	for _, tt := range tests {
		child, err := root.Key(tt.key)
		if err != nil {
			t.Fatalf("Key(%s) error = %v", tt.key, err)
		}
		if child.Kind() != tt.kind {
			t.Fatalf("%s kind = %s, want %s", tt.key, child.Kind(), tt.kind)
		}
	}
}

func TestInterfaceConversion(t *testing.T) {
	t.Parallel()

	root := ParseText([]byte(`{"a": {"b": [1, true, "x", null]}}`))

	value := root.Interface()
	object, ok := value.(map[string]any)
	if !ok {
		t.Fatalf("Interface() = %T, want map", value)
	}

	inner, ok := object["a"].(map[string]any)
	if !ok {
		t.Fatalf("a = %T, want map", object["a"])
	}

	list, ok := inner["b"].([]any)
	if !ok || len(list) != 4 {
		t.Fatalf("b = %#v, want 4-element slice", inner["b"])
	}
	if list[0] != 1.0 || list[1] != true || list[2] != "x" || list[3] != nil {
		t.Fatalf("b = %#v", list)
	}
}
