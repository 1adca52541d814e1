package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level zakatbook.yaml configuration.
type Config struct {
	Owner     OwnerConfig `yaml:"owner"`
	Nisab     NisabConfig `yaml:"nisab"`
	Hawl      HawlConfig  `yaml:"hawl"`
	Vocab     VocabConfig `yaml:"vocab"`
	ZakatType string      `yaml:"zakat_type"` // payment type that settles zakat due
	Git       GitConfig   `yaml:"git"`
}

// OwnerConfig identifies whose zakat book this is.
type OwnerConfig struct {
	Name string `yaml:"name"`
}

// NisabConfig holds the nisab thresholds in troy ounces.
type NisabConfig struct {
	GoldOz   float64 `yaml:"gold_oz"`   // 85g ÷ 31.1035 g/oz
	SilverOz float64 `yaml:"silver_oz"` // 595g ÷ 31.1035 g/oz
}

// HawlConfig controls the hawl countdown.
type HawlConfig struct {
	DueSoonDays int `yaml:"due_soon_days"`
}

// VocabConfig holds the three closed vocabularies read by the ledger and
// reports. Blank slots are ignored; each list is capped by settings.SlotLimit.
type VocabConfig struct {
	PaymentTypes []string `yaml:"payment_types"`
	Services     []string `yaml:"services"`
	Recipients   []string `yaml:"recipients"`
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a zakatbook.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the standard presets for a new book.
func Default(ownerName string) *Config {
	return &Config{
		Owner: OwnerConfig{
			Name: ownerName,
		},
		Nisab: NisabConfig{
			GoldOz:   2.7315,
			SilverOz: 19.1358,
		},
		Hawl: HawlConfig{
			DueSoonDays: 30,
		},
		Vocab: VocabConfig{
			PaymentTypes: []string{"Zakat", "Sadaqah", "Fitrana", "Qurbani"},
			Services:     []string{"Remitly", "Wise", "Bank Transfer", "Cash", "Zelle"},
			Recipients: []string{
				"Islamic Relief USA", "Zakat Foundation", "LaunchGood",
				"Local Mosque", "Family Member",
			},
		},
		ZakatType: "Zakat",
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Zakatbook",
			AuthorEmail: "book@zakatbook.dev",
		},
	}
}
