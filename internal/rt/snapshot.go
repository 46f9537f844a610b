package rt

import (
	"errors"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Value snapshots are versioned msgpack blobs of a value tree, used by the
// CLI to persist fetch responses and by anything else that wants to hand a
// value across process boundaries. Promises and functions have no
// serializable state and are rejected.

// Increment when the snapshot layout changes.
const snapshotSchemaVersion uint16 = 1

// ErrNotSnapshotable is returned when a value tree contains a promise or
// function.
var ErrNotSnapshotable = errors.New("value is not snapshotable")

type snapshotNode struct {
	Kind  uint8          `msgpack:"k"`
	Bool  bool           `msgpack:"b,omitempty"`
	Num   float64        `msgpack:"n,omitempty"`
	Str   string         `msgpack:"s,omitempty"`
	Elems []snapshotNode `msgpack:"e,omitempty"`
	Keys  []string       `msgpack:"p,omitempty"`
	Props []snapshotNode `msgpack:"v,omitempty"`
}

type snapshotPayload struct {
	Schema uint16       `msgpack:"schema"`
	Root   snapshotNode `msgpack:"root"`
}

func toSnapshotNode(v Value) (snapshotNode, error) {
	node := snapshotNode{Kind: uint8(v.Kind)}
	switch v.Kind {
	case VKNull, VKUndefined:
	case VKBool:
		node.Bool = v.Bool
	case VKNumber:
		node.Num = v.Num
	case VKString:
		node.Str = v.Str
	case VKArray:
		if v.Arr != nil {
			node.Elems = make([]snapshotNode, 0, len(v.Arr.elems))
			for _, e := range v.Arr.elems {
				child, err := toSnapshotNode(e)
				if err != nil {
					return snapshotNode{}, err
				}
				node.Elems = append(node.Elems, child)
			}
		}
	case VKObject:
		if v.Obj != nil {
			node.Keys = make([]string, 0, len(v.Obj.props))
			node.Props = make([]snapshotNode, 0, len(v.Obj.props))
			for _, p := range v.Obj.props {
				child, err := toSnapshotNode(p.value)
				if err != nil {
					return snapshotNode{}, err
				}
				node.Keys = append(node.Keys, p.key)
				node.Props = append(node.Props, child)
			}
		}
	default:
		return snapshotNode{}, fmt.Errorf("%w: contains a %s", ErrNotSnapshotable, v.Kind)
	}
	return node, nil
}

func fromSnapshotNode(node snapshotNode) (Value, error) {
	switch ValueKind(node.Kind) {
	case VKNull:
		return MakeNull(), nil
	case VKUndefined:
		return MakeUndefined(), nil
	case VKBool:
		return MakeBool(node.Bool), nil
	case VKNumber:
		return MakeNumber(node.Num), nil
	case VKString:
		return MakeString(node.Str), nil
	case VKArray:
		arr := MakeArray(len(node.Elems))
		for _, child := range node.Elems {
			e, err := fromSnapshotNode(child)
			if err != nil {
				return Value{}, err
			}
			arr.Arr.push(e)
		}
		return arr, nil
	case VKObject:
		if len(node.Keys) != len(node.Props) {
			return Value{}, fmt.Errorf("corrupt snapshot: %d keys for %d properties", len(node.Keys), len(node.Props))
		}
		obj := MakeObject()
		for i, key := range node.Keys {
			p, err := fromSnapshotNode(node.Props[i])
			if err != nil {
				return Value{}, err
			}
			obj.Obj.props = append(obj.Obj.props, property{key: key, value: p})
		}
		return obj, nil
	default:
		return Value{}, fmt.Errorf("corrupt snapshot: unknown value kind %d", node.Kind)
	}
}

// EncodeValue serializes a value tree into a versioned snapshot blob.
func EncodeValue(v Value) ([]byte, error) {
	root, err := toSnapshotNode(v)
	if err != nil {
		return nil, err
	}
	data, err := msgpack.Marshal(snapshotPayload{Schema: snapshotSchemaVersion, Root: root})
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeValue rebuilds a value tree from a snapshot blob.
func DecodeValue(data []byte) (Value, error) {
	var payload snapshotPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return Value{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if payload.Schema != snapshotSchemaVersion {
		return Value{}, fmt.Errorf("unsupported snapshot schema %d (want %d)", payload.Schema, snapshotSchemaVersion)
	}
	return fromSnapshotNode(payload.Root)
}
