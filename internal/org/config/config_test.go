package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_BundledFile(t *testing.T) {
	cfg, err := Load("config.yaml")
	require.NoError(t, err)

	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.False(t, cfg.UsesSQLite())
	assert.True(t, cfg.KafkaEnabled())
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=orgchart sslmode=disable", cfg.Database().DSN())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeFile(t, "config.yaml", `
GRPC_PORT: 1
HTTP_PORT: 2
DB_HOST: db
DB_NAME: org
KAFKA_BROKERS: [a:9092]
TOPIC: t
JWT_SECRET: file-secret
`)
	t.Setenv("GRPC_PORT", "6000")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("SEED_ROLES", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 6000, cfg.GRPCPort)
	assert.Equal(t, 2, cfg.HTTPPort)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.SeedRoles)
}

func TestLoad_DotEnv(t *testing.T) {
	path := writeFile(t, "config.yaml", "GRPC_PORT: 1\nHTTP_PORT: 2\nDB_DRIVER: sqlite\nJWT_SECRET: s\n")
	envFile := writeFile(t, ".env", "DB_PATH=/tmp/from-dotenv.db\n")
	t.Cleanup(func() {
		_ = os.Unsetenv("DB_PATH")
	})

	cfg, err := Load(path, envFile, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.True(t, cfg.UsesSQLite())
	assert.Equal(t, "/tmp/from-dotenv.db", cfg.DBPath)
	assert.False(t, cfg.KafkaEnabled())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "GRPC_PORT: [not, a, port]"))
	assert.Error(t, err)

	path := writeFile(t, "config.yaml", "GRPC_PORT: 1\nHTTP_PORT: 2\nDB_HOST: h\nDB_NAME: n\nJWT_SECRET: s\n")
	t.Setenv("DB_PORT", "five")
	_, err = Load(path)
	assert.ErrorContains(t, err, "DB_PORT")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{GRPCPort: 1, HTTPPort: 2, DBHost: "h", DBName: "n", JWTSecret: "s"}
	}

	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"missing port", func(c *Config) { c.HTTPPort = 0 }, false},
		{"same ports", func(c *Config) { c.HTTPPort = c.GRPCPort }, false},
		{"missing secret", func(c *Config) { c.JWTSecret = "" }, false},
		{"brokers without topic", func(c *Config) { c.KafkaBrokers = []string{"k:9092"} }, false},
		{"postgres without host", func(c *Config) { c.DBHost = "" }, false},
		{"sqlite without path", func(c *Config) { c.DBDriver = "SQLite" }, false},
		{"sqlite with path", func(c *Config) { c.DBDriver = "sqlite"; c.DBPath = "org.db" }, true},
		{"unknown driver", func(c *Config) { c.DBDriver = "oracle" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
