package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_PASSWORD", "pw")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000", "http://127.0.0.1:5173"}, cfg.Server.AllowOrigins)
	assert.Equal(t, 10*time.Minute, cfg.Redis.CatalogTTL)
	assert.Equal(t, 0, cfg.Redis.RedisDB)
	assert.Equal(t, 2.0, cfg.Ingest.RequestsPerSecond)
	assert.Equal(t, uint32(3), cfg.Ingest.FailureThreshold)
	assert.Empty(t, cfg.Mongo.URI)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_CACHE_TTL", "90s")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("INGEST_REQUESTS_PER_SECOND", "0.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 90*time.Second, cfg.Redis.CatalogTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowOrigins)
	assert.Equal(t, 0.5, cfg.Ingest.RequestsPerSecond)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "jwt secret",
			env:     map[string]string{"DB_PASSWORD": "pw"},
			wantErr: "missing jwt secret",
		},
		{
			name:    "db password",
			env:     map[string]string{"JWT_SECRET": "s"},
			wantErr: "missing database password",
		},
		{
			name:    "bad redis db",
			env:     map[string]string{"JWT_SECRET": "s", "DB_PASSWORD": "pw", "REDIS_DB": "x"},
			wantErr: "invalid redis database",
		},
		{
			name:    "non positive rate",
			env:     map[string]string{"JWT_SECRET": "s", "DB_PASSWORD": "pw", "INGEST_REQUESTS_PER_SECOND": "0"},
			wantErr: "invalid ingest requests per second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			t.Setenv("DB_PASSWORD", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
