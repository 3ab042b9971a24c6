package export

import (
	"github.com/arloliu/nbt/payload"
	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes root as a one-entry YAML mapping from its name to
// ToNative(root.Payload). Mapping keys are emitted in sorted order.
func MarshalYAML(root payload.NamedTag) ([]byte, error) {
	return yaml.Marshal(map[string]any{root.Name: ToNative(root.Payload)})
}
