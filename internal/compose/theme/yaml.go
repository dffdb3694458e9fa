package theme

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EncodeYAML renders the theme's portable form as a YAML document.
func EncodeYAML(t *Theme) ([]byte, error) {
	data, err := yaml.Marshal(t.Input())
	if err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	return data, nil
}

// DecodeYAML parses an exported theme document back into its portable form.
// The result still needs to pass through New or Manager.Import to validate.
func DecodeYAML(data []byte) (Input, error) {
	var input Input
	if err := yaml.Unmarshal(data, &input); err != nil {
		return Input{}, fmt.Errorf("decode theme: %w", err)
	}
	return input, nil
}
