package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kenneltrack/internal/config"
)

// Connect opens the relational store for the environment selected by cfg.
func Connect(cfg config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.PostgresHost, cfg.PostgresPort, cfg.PostgresUser,
		cfg.PostgresPassword, databaseName(cfg), cfg.PostgresSSLMode,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func databaseName(cfg config.Config) string {
	if cfg.GoEnv == "test" {
		return cfg.PostgresDB + "_test"
	}
	return cfg.PostgresDB
}
