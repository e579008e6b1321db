package experiments

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AgentConfig is one algorithm configuration under test.
type AgentConfig struct {
	ID          int    `yaml:"id"`
	Algorithm   string `yaml:"algorithm"`
	Simulations int    `yaml:"simulations"`
	Depth       int    `yaml:"depth"`
	Seed        uint64 `yaml:"seed"`
}

// Matchup pairs two agent IDs. The starting side alternates per game.
type Matchup struct {
	Agent1 int `yaml:"agent1"`
	Agent2 int `yaml:"agent2"`
}

type Config struct {
	Game     string        `yaml:"game"`
	Games    int           `yaml:"games"`
	Results  string        `yaml:"results"`
	Agents   []AgentConfig `yaml:"agents"`
	Matchups []Matchup     `yaml:"matchups"`
}

// LoadConfig reads and validates an experiment configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Game == "" {
		return fmt.Errorf("config: game must be set")
	}
	if c.Games <= 0 {
		return fmt.Errorf("config: games must be positive, got %d", c.Games)
	}
	if c.Results == "" {
		c.Results = "results"
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("config: at least one agent is required")
	}

	ids := make(map[int]bool, len(c.Agents))
	for _, agent := range c.Agents {
		if ids[agent.ID] {
			return fmt.Errorf("config: duplicate agent id %d", agent.ID)
		}
		ids[agent.ID] = true

		switch agent.Algorithm {
		case "mcts":
			if agent.Simulations <= 0 {
				return fmt.Errorf("config: agent %d: mcts requires positive simulations", agent.ID)
			}
		case "minimax":
			if agent.Depth < 0 {
				return fmt.Errorf("config: agent %d: minimax depth must not be negative", agent.ID)
			}
		default:
			return fmt.Errorf("config: agent %d: unknown algorithm %q", agent.ID, agent.Algorithm)
		}
	}

	if len(c.Matchups) == 0 {
		return fmt.Errorf("config: at least one matchup is required")
	}
	for i, matchup := range c.Matchups {
		if !ids[matchup.Agent1] || !ids[matchup.Agent2] {
			return fmt.Errorf("config: matchup %d references unknown agent", i)
		}
	}
	return nil
}

func (c *Config) agent(id int) AgentConfig {
	for _, agent := range c.Agents {
		if agent.ID == id {
			return agent
		}
	}
	panic(fmt.Sprintf("unknown agent id %d", id))
}
