package sim

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// AccountSeed is one account created at simulation setup.
type AccountSeed struct {
	Holder  string
	Balance int64
}

// Config holds every knob the driver passes in; the ledger core itself is
// configuration-free.
type Config struct {
	Workers  int
	Ops      int
	MinDelay time.Duration
	MaxDelay time.Duration
	Seed     int64
	Accounts []AccountSeed
}

func DefaultConfig() Config {
	return Config{
		Workers:  5,
		Ops:      7,
		MinDelay: 5 * time.Millisecond,
		MaxDelay: 25 * time.Millisecond,
		Seed:     time.Now().UnixNano(),
		Accounts: []AccountSeed{
			{Holder: "Khethokuhle", Balance: 200},
			{Holder: "Nokwanda", Balance: 200},
		},
	}
}

func (c Config) Validate() error {
	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if c.Ops <= 0 {
		return fmt.Errorf("ops must be positive, got %d", c.Ops)
	}
	if c.MinDelay < 0 {
		return fmt.Errorf("min delay must not be negative, got %s", c.MinDelay)
	}
	if c.MaxDelay < c.MinDelay {
		return fmt.Errorf("max delay %s is below min delay %s", c.MaxDelay, c.MinDelay)
	}
	if len(c.Accounts) == 0 {
		return fmt.Errorf("at least one account must be seeded")
	}
	for _, a := range c.Accounts {
		if a.Holder == "" {
			return fmt.Errorf("account holder must not be empty")
		}
		if a.Balance < 0 {
			return fmt.Errorf("account %q has negative starting balance %d", a.Holder, a.Balance)
		}
	}
	return nil
}

type yamlConfig struct {
	Workers  int           `yaml:"workers"`
	Ops      int           `yaml:"ops"`
	MinDelay string        `yaml:"min_delay"`
	MaxDelay string        `yaml:"max_delay"`
	Seed     int64         `yaml:"seed"`
	Accounts []yamlAccount `yaml:"accounts"`
}

type yamlAccount struct {
	Holder  string `yaml:"holder"`
	Balance int64  `yaml:"balance"`
}

// LoadConfig reads a YAML config file on top of the defaults; fields absent
// from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var dto yamlConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if dto.Workers != 0 {
		cfg.Workers = dto.Workers
	}
	if dto.Ops != 0 {
		cfg.Ops = dto.Ops
	}
	if dto.MinDelay != "" {
		d, err := time.ParseDuration(dto.MinDelay)
		if err != nil {
			return Config{}, fmt.Errorf("parse min_delay: %w", err)
		}
		cfg.MinDelay = d
	}
	if dto.MaxDelay != "" {
		d, err := time.ParseDuration(dto.MaxDelay)
		if err != nil {
			return Config{}, fmt.Errorf("parse max_delay: %w", err)
		}
		cfg.MaxDelay = d
	}
	if dto.Seed != 0 {
		cfg.Seed = dto.Seed
	}
	if len(dto.Accounts) > 0 {
		cfg.Accounts = make([]AccountSeed, len(dto.Accounts))
		for i, a := range dto.Accounts {
			cfg.Accounts[i] = AccountSeed{Holder: a.Holder, Balance: a.Balance}
		}
	}
	return cfg, nil
}
