package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
			"amqpUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"catalog": map[string]any{
			"reconcileConcurrency": 4,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_AMQPURL", want: "pubsub.amqpUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "CATALOG_RECONCILECONCURRENCY", want: "catalog.reconcileConcurrency"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Auth)
	require.NotNil(t, cfg.Catalog)
	require.NotNil(t, cfg.QRCode)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "jwt", cfg.Auth.CookieName)
	assert.Equal(t, defaultReconcileConcurrency, cfg.Catalog.ReconcileConcurrency)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, "http://localhost:8080", cfg.Catalog.PublicBaseURL)
	assert.Nil(t, cfg.Storage)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:    &AuthConfig{BcryptCost: 12, CookieName: "session"},
		Catalog: &CatalogConfig{ReconcileConcurrency: 8, PublicBaseURL: "https://shop.example.com/"},
		Storage: &StorageConfig{BucketURL: "mem://"},
	}

	applyDefaults(cfg)

	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "session", cfg.Auth.CookieName)
	assert.Equal(t, 8, cfg.Catalog.ReconcileConcurrency)
	assert.Equal(t, "https://shop.example.com", cfg.Catalog.PublicBaseURL)
	assert.Equal(t, int64(defaultMaxImageBytes), cfg.Storage.MaxImageBytes)
}
