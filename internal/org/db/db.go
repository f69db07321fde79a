// Package db implements the gorm-backed store of employees, departments,
// roles and activity logs.
package db

import (
	"context"
	"fmt"

	dbmodels "github.com/gartstein/orgchart/internal/org/db/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Repository struct {
	db *gorm.DB
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// DSN renders the libpq connection string for cfg.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// NewRepository connects to PostgreSQL and migrates the schema.
func NewRepository(cfg *Config) (*Repository, error) {
	return Open(postgres.Open(cfg.DSN()))
}

// Open builds a Repository on top of any gorm dialector and migrates the schema.
func Open(dialector gorm.Dialector) (*Repository, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.Migrate(); err != nil {
		return nil, err
	}
	return repo, nil
}

// Migrate creates or updates every table of the service.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(
		&dbmodels.Permission{},
		&dbmodels.Role{},
		&dbmodels.Department{},
		&dbmodels.Employee{},
		&dbmodels.ActivityLog{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// DB exposes the underlying handle, mostly for tests.
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// WithTransaction runs fn against a repository bound to a single transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
func (r *Repository) WithTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) Exec(ctx context.Context, query string, params ...interface{}) error {
	result := r.db.WithContext(ctx).Exec(query, params...)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Ping checks that the database answers.
func (r *Repository) Ping(ctx context.Context) error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}
	return db.PingContext(ctx)
}

func (r *Repository) Close() error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
