package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	return LoadFrom(context.Background(), envconfig.MapLookuper(env))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t, map[string]string{"JWT_SECRET": "s3cret"})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 5*time.Second, cfg.Auth.LookupTimeout)
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "school_api", cfg.Mongo.Database)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_LegacyLifetimeMustAgree(t *testing.T) {
	_, err := load(t, map[string]string{"JWT_EXPIRES_IN": "1d"})
	require.NoError(t, err)

	_, err = load(t, map[string]string{"JWT_EXPIRES_IN": "1d", "TOKEN_TTL": "12h"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicts")

	_, err = load(t, map[string]string{"JWT_EXPIRES_IN": "soon"})
	require.Error(t, err)
}

func TestLoad_CORSOriginsList(t *testing.T) {
	cfg, err := load(t, map[string]string{"CORS_ORIGINS": "https://a.example,https://b.example"})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
}

func TestLoad_RejectsNonPositiveTTL(t *testing.T) {
	_, err := load(t, map[string]string{"TOKEN_TTL": "0s"})
	require.Error(t, err)
}

func TestParseLifetime(t *testing.T) {
	cases := map[string]time.Duration{
		"1d":  24 * time.Hour,
		"7d":  7 * 24 * time.Hour,
		"90m": 90 * time.Minute,
		"24h": 24 * time.Hour,
	}
	for in, want := range cases {
		got, err := ParseLifetime(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLifetime("106751d")
	assert.NoError(t, err, "largest representable day count")

	for _, bad := range []string{"", "d", "-1d", "0h", "tomorrow", "106752d", "999999999d", "99999999999999999999d"} {
		_, err := ParseLifetime(bad)
		assert.Error(t, err, bad)
	}
}
