package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 30*time.Second, cfg.RowLockTTL)
	assert.Equal(t, "UTC", cfg.Timezone)
	assert.False(t, cfg.ExportArchiveEnabled())
	assert.Empty(t, cfg.AuditKafkaBrokers)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "a-real-secret")
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("AUDIT_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("EXPORT_S3_BUCKET", "exports")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.AuditKafkaBrokers)
	assert.True(t, cfg.ExportArchiveEnabled())
	assert.Equal(t, []string{"10.0.0.0/8"}, cfg.TrustedProxies)
}

func TestValidateRejectsDefaultSecretInProduction(t *testing.T) {
	cfg := &Config{
		Env:        "production",
		DBUrl:      "postgres://x",
		JWTSecret:  defaultJWTSecret,
		SessionTTL: time.Hour,
		RowLockTTL: time.Second,
	}
	require.Error(t, cfg.Validate())

	cfg.Env = "development"
	require.NoError(t, cfg.Validate())
}

func TestValidateRejectsNonPositiveDurations(t *testing.T) {
	cfg := &Config{Env: "development", DBUrl: "x", JWTSecret: "s", SessionTTL: 0, RowLockTTL: time.Second}
	require.Error(t, cfg.Validate())

	cfg.SessionTTL = time.Hour
	cfg.RowLockTTL = 0
	require.Error(t, cfg.Validate())
}
