package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/wallaxis/pkg/centerline"
)

// LoadConfig reads engine settings from a YAML file. Options not present in
// the file keep their defaults.
func LoadConfig(filename string) (centerline.Config, error) {
	cfg := centerline.DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
