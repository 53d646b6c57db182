package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// SkillTreed holds all configuration for the skill tree daemon.
type SkillTreed struct {
	// Mirror server
	BindAddress string `yaml:"bind_address"`
	Port        int    `yaml:"port"`

	// Player session
	TotalPoints   int32  `yaml:"total_points"`
	PlayerProfile string `yaml:"player_profile"`

	// Presentation
	IconOverridesPath string `yaml:"icon_overrides_path"` // optional YAML icon table

	// Storage
	Storage StorageConfig `yaml:"storage"`
}

// StorageConfig selects and parameterizes the persistence gateway.
type StorageConfig struct {
	Driver     string         `yaml:"driver"` // memory | sqlite | postgres
	SQLitePath string         `yaml:"sqlite_path"`
	Database   DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultSkillTreed returns the daemon config with sensible defaults.
func DefaultSkillTreed() SkillTreed {
	return SkillTreed{
		BindAddress:   "0.0.0.0",
		Port:          8710,
		TotalPoints:   60,
		PlayerProfile: "local",
		Storage: StorageConfig{
			Driver:     DriverSQLite,
			SQLitePath: "digo-saves.db",
			Database: DatabaseConfig{
				Host:     "127.0.0.1",
				Port:     5432,
				User:     "digo",
				Password: "digo",
				DBName:   "digo",
				SSLMode:  "disable",
			},
		},
	}
}

// LoadSkillTreed loads daemon config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadSkillTreed(path string) (SkillTreed, error) {
	cfg := DefaultSkillTreed()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
