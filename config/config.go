// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvProduction is the APP_ENV value that enables the Secure cookie
// attribute on the admin session cookie.
const EnvProduction = "production"

// Defaults for every recognized environment variable. The session secret
// and admin credentials are bootstrap values only; a real deployment must
// override them (main logs a warning when they are left in place).
const (
	DefaultPort          = "3000"
	DefaultEnv           = "development"
	DefaultSessionSecret = "your-secret-key-change-this-in-production"
	DefaultDataDir       = "data"
	DefaultPublicDir     = "public"
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin"
)

// Config holds the resolved server configuration.
type Config struct {
	Port          string
	Env           string
	SessionSecret string
	DataDir       string
	PublicDir     string
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from the environment. A .env file in the working
// directory is honored when present; every key is optional.
func Load() *Config {
	_ = godotenv.Load() // no .env file is fine, env vars still apply

	viper.AutomaticEnv()
	viper.SetDefault("port", DefaultPort)
	viper.SetDefault("app_env", DefaultEnv)
	viper.SetDefault("session_secret", DefaultSessionSecret)
	viper.SetDefault("data_dir", DefaultDataDir)
	viper.SetDefault("public_dir", DefaultPublicDir)
	viper.SetDefault("admin_username", DefaultAdminUsername)
	viper.SetDefault("admin_password", DefaultAdminPassword)

	return &Config{
		Port:          viper.GetString("port"),
		Env:           viper.GetString("app_env"),
		SessionSecret: viper.GetString("session_secret"),
		DataDir:       viper.GetString("data_dir"),
		PublicDir:     viper.GetString("public_dir"),
		AdminUsername: viper.GetString("admin_username"),
		AdminPassword: viper.GetString("admin_password"),
	}
}

// IsProduction reports whether the server runs with production hardening.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// UploadsDir is the directory uploaded media is written to. It lives under
// the public directory so files are reachable at /uploads/<name>.
func (c *Config) UploadsDir() string {
	return filepath.Join(c.PublicDir, "uploads")
}
