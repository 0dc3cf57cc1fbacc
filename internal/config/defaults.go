package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/jumpboy.yaml
var defaultJumpBoyYAML []byte

// DefaultJumpBoyConfig returns the embedded default configuration.
// The embedded file ships with the binary, so a parse failure is a build
// defect and panics.
func DefaultJumpBoyConfig() JumpBoyConfig {
	var cfg JumpBoyConfig
	if err := yaml.Unmarshal(defaultJumpBoyYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded jumpboy.yaml is invalid: %v", err))
	}
	return cfg
}
