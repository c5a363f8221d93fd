package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashadhithyan11707-web/collage-chatbot/pkg/config"
)

func TestMigrationURL(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "app",
		Password: "p@ss",
		DBName:   "college",
		SSLMode:  "disable",
	}

	assert.Equal(t, "pgx5://app:p%40ss@db:5432/college?sslmode=disable", MigrationURL(cfg))
}
