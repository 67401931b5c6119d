package experiments

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines a depth experiment: the boards every game is played on
// and the depth ladder to pit against the baseline.
type Config struct {
	Name      string `yaml:"name"`
	Games     int    `yaml:"games"` // Per matchup
	GridSize  int    `yaml:"grid_size"`
	Treasures int    `yaml:"treasures"`
	MinValue  int    `yaml:"min_value"`
	MaxValue  int    `yaml:"max_value"`
	Seed      int64  `yaml:"seed"` // 0 draws a fresh board per game
	Baseline  int    `yaml:"baseline_depth"`
	Depths    []int  `yaml:"depths"`
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read experiment config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to parse experiment config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	if c.Name == "" {
		return fmt.Errorf("experiment config needs a name")
	}
	if c.Games < 1 {
		return fmt.Errorf("experiment %q needs at least 1 game per matchup", c.Name)
	}
	if c.Baseline < 1 {
		return fmt.Errorf("experiment %q needs a baseline depth of at least 1", c.Name)
	}
	if len(c.Depths) == 0 {
		return fmt.Errorf("experiment %q needs at least one depth to compare", c.Name)
	}
	for _, d := range c.Depths {
		if d < 1 {
			return fmt.Errorf("experiment %q has invalid depth %d", c.Name, d)
		}
	}
	return nil
}
