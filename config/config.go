// Package config reads server settings from the environment. Only the
// serving surface is configurable; business behavior is not.
package config

import (
	"fmt"
	"net"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Config holds the runtime settings for the HTTP server.
type Config struct {
	// Addr is the host:port the server binds.
	Addr string

	// LogLevel is the zap level name (debug, info, warn, error).
	LogLevel string

	// Mode is the gin mode (release, debug, test).
	Mode string
}

// Load reads configuration from environment variables, applying defaults
// for anything unset.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GIN_MODE", gin.ReleaseMode)
	v.AutomaticEnv()

	mode := v.GetString("GIN_MODE")
	switch mode {
	case gin.ReleaseMode, gin.DebugMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q", mode)
	}

	return &Config{
		Addr:     net.JoinHostPort(v.GetString("HOST"), v.GetString("PORT")),
		LogLevel: v.GetString("LOG_LEVEL"),
		Mode:     mode,
	}, nil
}
