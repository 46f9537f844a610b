package rt

import "testing"

func TestObjectSetGet(t *testing.T) {
	obj := MakeObject()
	ObjectSet(obj, "name", MakeString("smash"))
	ObjectSet(obj, "count", MakeNumber(2))

	if got := ObjectGet(obj, "name"); got.Kind != VKString || got.Str != "smash" {
		t.Fatalf("name = %v, want smash", got)
	}
	if got := ObjectGet(obj, "count"); got.Num != 2 {
		t.Fatalf("count = %v, want 2", got.Num)
	}
	if got := ObjectGet(obj, "missing"); got.Kind != VKNull {
		t.Fatalf("missing key = %v, want null", got)
	}
}

func TestObjectSetReplacesInPlace(t *testing.T) {
	obj := MakeObject()
	ObjectSet(obj, "a", MakeNumber(1))
	ObjectSet(obj, "b", MakeNumber(2))
	ObjectSet(obj, "a", MakeNumber(10))

	keys := ObjectKeys(obj)
	if n := ArrayLength(keys); n != 2 {
		t.Fatalf("key count = %d, want 2", n)
	}
	if k := ArrayGet(keys, 0); k.Str != "a" {
		t.Fatalf("first key = %q, want a (insertion order preserved)", k.Str)
	}
	if got := ObjectGet(obj, "a"); got.Num != 10 {
		t.Fatalf("a = %v after replace, want 10", got.Num)
	}
}

func TestObjectKeysOrder(t *testing.T) {
	obj := MakeObject()
	want := []string{"zeta", "alpha", "mid"}
	for _, k := range want {
		ObjectSet(obj, k, MakeNull())
	}
	keys := ObjectKeys(obj)
	for i, k := range want {
		if got := ArrayGet(keys, i); got.Str != k {
			t.Errorf("keys[%d] = %q, want %q", i, got.Str, k)
		}
	}
}

func TestObjectOpsOnWrongKind(t *testing.T) {
	str := MakeString("x")
	ObjectSet(str, "a", MakeNumber(1))
	if got := ObjectGet(str, "a"); got.Kind != VKNull {
		t.Errorf("get on non-object = %v, want null", got)
	}
	keys := ObjectKeys(str)
	if keys.Kind != VKArray || ArrayLength(keys) != 0 {
		t.Errorf("keys of non-object = %v, want empty array", keys)
	}
}

func TestObjectSetStoresIndependentCopy(t *testing.T) {
	child := MakeObject()
	ObjectSet(child, "n", MakeNumber(1))

	parent := MakeObject()
	ObjectSet(parent, "child", child)

	ObjectSet(child, "n", MakeNumber(99))

	stored := ObjectGet(parent, "child")
	if got := ObjectGet(stored, "n"); got.Num != 1 {
		t.Fatalf("stored child n = %v, want 1", got.Num)
	}
}
