package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

const FallingTextFile = "falling_text.yaml"

// FallingTextSpec is the YAML form of the falling text configuration. Values
// are kept raw here; validation and fallback happen when it becomes a config.
type FallingTextSpec struct {
	Text             string   `yaml:"text"`
	HighlightWords   []string `yaml:"highlightWords"`
	HighlightColor   string   `yaml:"highlightColor"`
	TextColor        string   `yaml:"textColor"`
	Trigger          string   `yaml:"trigger"`
	BackgroundColor  string   `yaml:"backgroundColor"`
	Gravity          float64  `yaml:"gravity"`
	FontSize         string   `yaml:"fontSize"`
	PointerStiffness float64  `yaml:"mouseConstraintStiffness"`
	PointerLength    float64  `yaml:"pointerLength"`
	PointerDamping   float64  `yaml:"pointerDamping"`
	Wireframes       bool     `yaml:"wireframes"`
	Walls            bool     `yaml:"walls"`
	JitterChance     float64  `yaml:"jitterChance"`
	Wiggle           float64  `yaml:"wiggle"`
	Seed             int64    `yaml:"seed"`
	LivelinessScript string   `yaml:"livelinessScript"`
}

// DefaultFallingTextSpec returns the embedded defaults.
func DefaultFallingTextSpec() (FallingTextSpec, error) {
	data, err := PrefabsFS.ReadFile(FallingTextFile)
	if err != nil {
		return FallingTextSpec{}, fmt.Errorf("prefabs: load %s: %w", FallingTextFile, err)
	}
	var spec FallingTextSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return FallingTextSpec{}, fmt.Errorf("prefabs: unmarshal %s: %w", FallingTextFile, err)
	}
	return spec, nil
}

// ParseFallingTextSpec decodes data on top of the embedded defaults, so keys
// missing from data keep their default value.
func ParseFallingTextSpec(data []byte) (FallingTextSpec, error) {
	spec, err := DefaultFallingTextSpec()
	if err != nil {
		return spec, err
	}
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return FallingTextSpec{}, fmt.Errorf("prefabs: unmarshal falling text: %w", err)
	}
	return spec, nil
}

// LoadFallingTextSpec reads name through Load and parses it.
func LoadFallingTextSpec(name string) (FallingTextSpec, error) {
	if name == "" {
		name = FallingTextFile
	}
	data, err := Load(name)
	if err != nil {
		return FallingTextSpec{}, fmt.Errorf("prefabs: load %s: %w", name, err)
	}
	spec, err := ParseFallingTextSpec(data)
	if err != nil {
		return FallingTextSpec{}, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return spec, nil
}
