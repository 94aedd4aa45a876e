package env

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"baccarat_sim/internal/config"
	"baccarat_sim/internal/model"
)

// presetFile - структура config.yaml: блок defaults и именованные пресеты
type presetFile struct {
	Defaults yaml.Node            `yaml:"defaults"`
	Presets  map[string]yaml.Node `yaml:"presets"`
}

type presetExtras struct {
	RebatePct float64 `yaml:"rebate_pct"`
}

type simulationConfig struct {
	defaults config.Preset
	presets  map[string]config.Preset
}

func NewSimulationConfigFromYAML(path string) (config.SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return parseSimulationConfig(data)
}

func parseSimulationConfig(data []byte) (*simulationConfig, error) {
	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}

	defaults, err := decodePreset("defaults", &file.Defaults, config.Preset{Params: model.DefaultRunParams()})
	if err != nil {
		return nil, err
	}

	presets := make(map[string]config.Preset, len(file.Presets))
	for name, node := range file.Presets {
		p, err := decodePreset(name, &node, defaults)
		if err != nil {
			return nil, err
		}
		presets[name] = p
	}

	return &simulationConfig{defaults: defaults, presets: presets}, nil
}

// decodePreset overlays the fields present in node on top of base.
func decodePreset(name string, node *yaml.Node, base config.Preset) (config.Preset, error) {
	p := base
	p.Name = name
	if base.Params.Seed != nil {
		seed := *base.Params.Seed
		p.Params.Seed = &seed
	}
	if node.Kind == 0 {
		return p, nil
	}

	if err := node.Decode(&p.Params); err != nil {
		return config.Preset{}, fmt.Errorf("preset %q: %w", name, err)
	}
	extras := presetExtras{RebatePct: base.RebatePct}
	if err := node.Decode(&extras); err != nil {
		return config.Preset{}, fmt.Errorf("preset %q: %w", name, err)
	}
	p.RebatePct = extras.RebatePct
	return p, nil
}

func (s *simulationConfig) Defaults() config.Preset {
	return s.defaults
}

func (s *simulationConfig) Preset(name string) (config.Preset, bool) {
	p, ok := s.presets[name]
	return p, ok
}

// Presets returns every preset sorted by name.
func (s *simulationConfig) Presets() []config.Preset {
	out := make([]config.Preset, 0, len(s.presets))
	for _, p := range s.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
