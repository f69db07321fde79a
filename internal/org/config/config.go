// Package config loads the service configuration from a YAML file, an
// optional .env file and environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gartstein/orgchart/internal/org/db"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is used when no config file is given on the command line.
const DefaultPath = "internal/org/config/config.yaml"

// Database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config struct for YAML configuration
type Config struct {
	GRPCPort     int      `yaml:"GRPC_PORT"`
	HTTPPort     int      `yaml:"HTTP_PORT"`
	DBDriver     string   `yaml:"DB_DRIVER"`
	DBPath       string   `yaml:"DB_PATH"`
	DBHost       string   `yaml:"DB_HOST"`
	DBPort       int      `yaml:"DB_PORT"`
	DBUser       string   `yaml:"DB_USER"`
	DBPassword   string   `yaml:"DB_PASSWORD"`
	DBName       string   `yaml:"DB_NAME"`
	DBSSLMode    string   `yaml:"DB_SSLMODE"`
	KafkaBrokers []string `yaml:"KAFKA_BROKERS"`
	Topic        string   `yaml:"TOPIC"`
	KafkaGroupID string   `yaml:"KAFKA_GROUP_ID"`
	JWTSecret    string   `yaml:"JWT_SECRET"`
	SeedRoles    bool     `yaml:"SEED_ROLES"`
}

// Load reads path, then the given .env files when they exist, then applies
// environment overrides and validates the result.
func Load(path string, envFiles ...string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}
	if err := loadEnvFiles(envFiles); err != nil {
		return nil, err
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(file, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first missing or inconsistent setting.
func (c *Config) Validate() error {
	switch {
	case c.GRPCPort <= 0 || c.HTTPPort <= 0:
		return errors.New("GRPC_PORT and HTTP_PORT must be positive")
	case c.GRPCPort == c.HTTPPort:
		return errors.New("GRPC_PORT and HTTP_PORT must differ")
	case c.JWTSecret == "":
		return errors.New("JWT_SECRET is required")
	case len(c.KafkaBrokers) > 0 && c.Topic == "":
		return errors.New("TOPIC is required when KAFKA_BROKERS is set")
	}

	switch c.driver() {
	case DriverPostgres:
		if c.DBHost == "" || c.DBName == "" {
			return errors.New("DB_HOST and DB_NAME are required for postgres")
		}
	case DriverSQLite:
		if c.DBPath == "" {
			return errors.New("DB_PATH is required for sqlite")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	return nil
}

// Database returns the PostgreSQL connection settings.
func (c *Config) Database() *db.Config {
	return &db.Config{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		DBName:   c.DBName,
		SSLMode:  c.DBSSLMode,
	}
}

// UsesSQLite reports whether the store is a local SQLite file.
func (c *Config) UsesSQLite() bool {
	return c.driver() == DriverSQLite
}

// KafkaEnabled reports whether events go through Kafka.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func (c *Config) driver() string {
	if c.DBDriver == "" {
		return DriverPostgres
	}
	return strings.ToLower(c.DBDriver)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"DB_DRIVER":      &c.DBDriver,
		"DB_PATH":        &c.DBPath,
		"DB_HOST":        &c.DBHost,
		"DB_USER":        &c.DBUser,
		"DB_PASSWORD":    &c.DBPassword,
		"DB_NAME":        &c.DBName,
		"DB_SSLMODE":     &c.DBSSLMode,
		"TOPIC":          &c.Topic,
		"KAFKA_GROUP_ID": &c.KafkaGroupID,
		"JWT_SECRET":     &c.JWTSecret,
	}
	for key, field := range strs {
		if v, ok := lookup(key); ok {
			*field = v
		}
	}

	ints := map[string]*int{
		"GRPC_PORT": &c.GRPCPort,
		"HTTP_PORT": &c.HTTPPort,
		"DB_PORT":   &c.DBPort,
	}
	for key, field := range ints {
		v, ok := lookup(key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*field = n
	}

	if v, ok := lookup("SEED_ROLES"); ok {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SEED_ROLES: %w", err)
		}
		c.SeedRoles = seed
	}
	if v, ok := lookup("KAFKA_BROKERS"); ok {
		c.KafkaBrokers = splitList(v)
	}
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func loadEnvFiles(files []string) error {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env files: %w", err)
	}
	return nil
}
