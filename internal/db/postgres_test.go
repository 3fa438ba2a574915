package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perfcore/db/migrations"
	"perfcore/internal/config/configs"
)

func TestNewPostgresPoolRequiresURL(t *testing.T) {
	pool, err := NewPostgresPool(context.Background(), configs.Postgres{})
	assert.Nil(t, pool)
	assert.ErrorIs(t, err, ErrNoDatabaseURL)
}

func TestNewPostgresPoolRejectsBadURL(t *testing.T) {
	_, err := NewPostgresPool(context.Background(), configs.Postgres{URL: "postgres://%zz"})
	assert.Error(t, err)
}

func TestMigrationsEmbedded(t *testing.T) {
	up, err := migrations.FS.ReadFile("000001_init.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS performance_data")
	assert.Contains(t, string(up), "CREATE TABLE IF NOT EXISTS linkedin_ad_performance")

	down, err := migrations.FS.ReadFile("000001_init.down.sql")
	require.NoError(t, err)
	assert.Contains(t, string(down), "DROP TABLE IF EXISTS campaigns")
}
