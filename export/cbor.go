package export

import (
	"github.com/arloliu/nbt/payload"
	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map keys,
// smallest integer and float encodings, no indefinite-length items. The same
// tree always produces identical bytes.
var encMode cbor.EncMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("export: CBOR encoder initialization failed: " + err.Error())
	}
}

// MarshalCBOR encodes root as a one-entry CBOR map from its name to
// ToNative(root.Payload).
func MarshalCBOR(root payload.NamedTag) ([]byte, error) {
	return encMode.Marshal(map[string]any{root.Name: ToNative(root.Payload)})
}
