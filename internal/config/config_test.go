package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_USE_SSL", "false")
	t.Setenv("MINIO_PUBLIC_URL", "http://localhost:9000")
	t.Setenv("FEED_DEFAULT_PAGE_SIZE", "")
	t.Setenv("FEED_MAX_PAGE_SIZE", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("MAX_UPLOAD_SIZE", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")

	cfg := LoadConfig()

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "http://localhost:9000", cfg.MinIO.PublicURL)
	assert.Equal(t, 10, cfg.Feed.DefaultPageSize)
	assert.Equal(t, 100, cfg.Feed.MaxPageSize)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadSize)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "pgx")
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("FEED_DEFAULT_PAGE_SIZE", "20")
	t.Setenv("FEED_MAX_PAGE_SIZE", "50")
	t.Setenv("MAX_UPLOAD_SIZE", "2048")

	cfg := LoadConfig()

	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "pgx", cfg.DB.Driver)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecretKey)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 20, cfg.Feed.DefaultPageSize)
	assert.Equal(t, 50, cfg.Feed.MaxPageSize)
	assert.Equal(t, int64(2048), cfg.MaxUploadSize)
}

func TestLoadFeed_DefaultAboveMax(t *testing.T) {
	t.Setenv("FEED_DEFAULT_PAGE_SIZE", "500")
	t.Setenv("FEED_MAX_PAGE_SIZE", "100")

	feed := LoadFeed()

	assert.Equal(t, 10, feed.DefaultPageSize)
	assert.Equal(t, 100, feed.MaxPageSize)
}

func TestLoadMinIO_SSLScheme(t *testing.T) {
	t.Setenv("MINIO_ENDPOINT", "s3.example.com")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("MINIO_PUBLIC_URL", "")

	m := LoadMinIO()

	assert.Equal(t, "https://s3.example.com", m.PublicURL)
	assert.True(t, m.UseSSL)
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, 2*time.Hour, parseDuration("7d", 2*time.Hour))
	assert.Equal(t, 90*time.Second, parseDuration("90s", time.Hour))
	assert.Equal(t, int64(10*1024*1024), parseMaxUploadSize("-5"))
	assert.Equal(t, int64(512), parseMaxUploadSize("512"))
}
