package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_Defaults(t *testing.T) {
	conf, err := ParseEnv(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, ":8080", conf.HTTP.Address)
	assert.Equal(t, 5432, conf.Database.Port)
	assert.Equal(t, "taproom", conf.Database.Name)
	assert.Equal(t, 1000, conf.API.DefaultPageSize)
	assert.False(t, conf.API.TaggedResults)
	assert.False(t, conf.Database.Drop)
	assert.True(t, conf.Database.Initialize)
	assert.Equal(t, 30*time.Second, conf.Database.MaxConnIdleTime)
	assert.True(t, conf.IsDevelopment())
}

func TestParseEnv_Overrides(t *testing.T) {
	conf, err := ParseEnv(map[string]string{
		"TAPROOM_DATABASE_HOST":         "db",
		"TAPROOM_DATABASE_NAME":         "brewery",
		"TAPROOM_DATABASE_DROP":         "true",
		"TAPROOM_API_TAGGED_RESULTS":    "true",
		"TAPROOM_API_DEFAULT_PAGE_SIZE": "25",
		"TAPROOM_APP_ENV":               "production",
	})
	require.NoError(t, err)

	assert.Equal(t, "db", conf.Database.Host)
	assert.True(t, conf.Database.Drop)
	assert.True(t, conf.API.TaggedResults)
	assert.Equal(t, 25, conf.API.DefaultPageSize)
	assert.False(t, conf.IsDevelopment())
	assert.Equal(t, "postgres://postgres:postgres@db:5432/brewery?sslmode=disable", conf.Database.DSN())
	assert.Equal(t, "pgx5://postgres:postgres@db:5432/brewery?sslmode=disable", conf.Database.MigrateURL())
	assert.Equal(t, "postgres://postgres:postgres@db:5432/postgres?sslmode=disable", conf.Database.AdminDSN())
}

func TestParseEnv_Invalid(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
	}{
		{"page size zero", map[string]string{"TAPROOM_API_DEFAULT_PAGE_SIZE": "0"}},
		{"page size too big", map[string]string{"TAPROOM_API_DEFAULT_PAGE_SIZE": "1001"}},
		{"bad port", map[string]string{"TAPROOM_DATABASE_PORT": "abc"}},
		{"min above max", map[string]string{"TAPROOM_DATABASE_MIN_CONNS": "30", "TAPROOM_DATABASE_MAX_CONNS": "10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnv(tt.vars)
			assert.Error(t, err)
		})
	}
}
