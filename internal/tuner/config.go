package tuner

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is an optional on-disk override for a tuning run's flags, loaded
// once at startup so a long-running GA session's parameters live in a
// reviewable file instead of a shell history line, mirroring the
// yaml-backed settings file convention used elsewhere in the retrieval
// pack (e.g. mbflow's internal/config.AppConfig).
type Config struct {
	Mode               string `yaml:"mode"`
	PopulationSize     int    `yaml:"population_size"`
	EliteSize          int    `yaml:"elite_size"`
	Parallel           int    `yaml:"parallel"`
	VisibleTumos       int    `yaml:"visible_tumos"`
	WinGoal            int    `yaml:"win_goal"`
	BeamDepth          int    `yaml:"beam_depth"`
	BeamWidth          int    `yaml:"beam_width"`
	BeamParallel       int    `yaml:"beam_parallel"`
	MaxTumos           int    `yaml:"max_tumos"`
	SimulateCount      int    `yaml:"simulate_count"`
	RequiredChainScore int    `yaml:"required_chain_score"`
}

// LoadConfig reads a YAML config file. A missing file is not an error: the
// caller falls back to its flag defaults.
func LoadConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, false, nil
	}
	if err != nil {
		return Config{}, false, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false, err
	}
	return cfg, true, nil
}
