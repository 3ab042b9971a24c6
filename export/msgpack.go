package export

import (
	"bytes"

	"github.com/arloliu/nbt/payload"
	"github.com/vmihailenco/msgpack/v5"
)

// MarshalMsgpack encodes root as a one-entry MessagePack map from its name to
// ToNative(root.Payload). Map keys are written in sorted order.
func MarshalMsgpack(root payload.NamedTag) ([]byte, error) {
	var buf bytes.Buffer

	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(map[string]any{root.Name: ToNative(root.Payload)}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
