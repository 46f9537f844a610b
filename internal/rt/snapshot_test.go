package rt

import (
	"errors"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
)

func encodeWithSchema(v Value, schema uint16) ([]byte, error) {
	root, err := toSnapshotNode(v)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(snapshotPayload{Schema: schema, Root: root})
}

func TestSnapshotRoundTrip(t *testing.T) {
	data := MakeObject()
	ObjectSet(data, "id", MakeNumber(1))
	ObjectSet(data, "name", MakeString("Test Data"))

	arr := MakeArray(0)
	ArrayPush(arr, MakeNull())
	ArrayPush(arr, MakeUndefined())
	ArrayPush(arr, MakeBool(true))
	ArrayPush(arr, MakeNumber(-2.5))
	ArrayPush(arr, MakeString("hi"))

	root := MakeObject()
	ObjectSet(root, "message", MakeString("Success"))
	ObjectSet(root, "data", data)
	ObjectSet(root, "items", arr)

	blob, err := EncodeValue(root)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := DecodeValue(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if got := ToString(back); got != "[object Object]" {
		t.Fatalf("decoded kind drifted: %q", got)
	}
	if got := ObjectGet(back, "message"); got.Str != "Success" {
		t.Errorf("message = %q", got.Str)
	}
	if got := ObjectGet(ObjectGet(back, "data"), "name"); got.Str != "Test Data" {
		t.Errorf("data.name = %q", got.Str)
	}
	items := ObjectGet(back, "items")
	if got := ToString(items); got != "[null,undefined,true,-2.5,hi]" {
		t.Errorf("items = %q", got)
	}

	// Key order survives the round trip.
	keys := ObjectKeys(back)
	for i, want := range []string{"message", "data", "items"} {
		if got := ArrayGet(keys, i); got.Str != want {
			t.Errorf("keys[%d] = %q, want %q", i, got.Str, want)
		}
	}
}

func TestSnapshotRejectsPromisesAndFuncs(t *testing.T) {
	holder := MakeObject()
	holder.Obj.props = append(holder.Obj.props, property{key: "p", value: MakePromise(NewPromise())})
	if _, err := EncodeValue(holder); !errors.Is(err, ErrNotSnapshotable) {
		t.Fatalf("promise encode err = %v, want ErrNotSnapshotable", err)
	}

	fn := MakeArray(0)
	fn.Arr.elems = append(fn.Arr.elems, MakeFunc(func(this Value, args []Value) Value { return MakeNull() }))
	if _, err := EncodeValue(fn); !errors.Is(err, ErrNotSnapshotable) {
		t.Fatalf("func encode err = %v, want ErrNotSnapshotable", err)
	}
}

func TestSnapshotDecodeErrors(t *testing.T) {
	if _, err := DecodeValue([]byte{0xc1}); err == nil {
		t.Fatal("garbage blob decoded without error")
	}

	blob, err := EncodeValue(MakeNumber(1))
	if err != nil {
		t.Fatal(err)
	}
	// Flip the schema byte by re-encoding a payload from a hostile version.
	tampered, err := encodeWithSchema(MakeNumber(1), snapshotSchemaVersion+1)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DecodeValue(tampered); err == nil || !strings.Contains(err.Error(), "schema") {
		t.Fatalf("schema mismatch err = %v", err)
	}
	if _, err := DecodeValue(blob); err != nil {
		t.Fatalf("current schema should decode: %v", err)
	}
}
