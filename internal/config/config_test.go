package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "pairly")
	t.Setenv("DB_NAME", "pairly")
	t.Setenv("JWT_ACCESS_SECRET", strings.Repeat("s", 32))
	t.Setenv("STORAGE_ENDPOINT", "localhost:9000")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.Server.IsProduction())
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 10*time.Second, cfg.Database.TxTimeout)
	assert.Equal(t, 5*time.Minute, cfg.OTP.Expiry)
	assert.Equal(t, "profile-images", cfg.Storage.Bucket)
	assert.Equal(t, int64(10*1024*1024), cfg.Storage.MaxFileSize)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "localhost:6379", cfg.Redis.GetAddr())
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ENV", "production")
	t.Setenv("OTP_EXPIRY", "2m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Server.IsProduction())
	assert.Equal(t, 2*time.Minute, cfg.OTP.Expiry)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "missing database host", env: map[string]string{"DB_HOST": ""}, wantErr: "database host"},
		{name: "short secret", env: map[string]string{"JWT_ACCESS_SECRET": "short"}, wantErr: "at least 32"},
		{name: "missing storage", env: map[string]string{"STORAGE_ENDPOINT": ""}, wantErr: "storage endpoint"},
		{name: "non-positive otp expiry", env: map[string]string{"OTP_EXPIRY": "0s"}, wantErr: "OTP expiry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDatabaseValidateAlone(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", User: "u", DBName: "n", QueryTimeout: time.Second, TxTimeout: time.Second}
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "host=db port=0 user=u password= dbname=n sslmode=", cfg.GetDSN())
}
