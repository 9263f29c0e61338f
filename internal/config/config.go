// Package config loads runtime configuration from an optional config.yaml
// with environment variable overrides.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"db"`
	JWT    JWTConfig    `mapstructure:"jwt"`
	Upload UploadConfig `mapstructure:"upload"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"` // listen address, e.g. ":8080"
	Mode string `mapstructure:"mode"` // gin mode: debug / release
}

type DBConfig struct {
	Path string `mapstructure:"path"` // sqlite database file
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expire time.Duration `mapstructure:"expire"`
}

type UploadConfig struct {
	Dir string `mapstructure:"dir"` // cover image directory, served at /uploads
}

// Load reads config.yaml from configPath if present; every key can be
// overridden by environment (SERVER_ADDR, DB_PATH, JWT_SECRET, ...).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("server.addr", "SERVER_ADDR")
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("db.path", "DB_PATH")
	v.BindEnv("jwt.secret", "JWT_SECRET")
	v.BindEnv("jwt.expire", "JWT_EXPIRE")
	v.BindEnv("upload.dir", "UPLOAD_DIR")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("db.path", "./data/novelhub.db")
	v.SetDefault("jwt.secret", "dev-secret-change-me")
	v.SetDefault("jwt.expire", "24h")
	v.SetDefault("upload.dir", "./uploads")

	if err := v.ReadInConfig(); err != nil {
		// missing config file is fine, defaults and env cover it
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
