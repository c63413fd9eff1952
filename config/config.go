package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Store  StoreConfig  `yaml:"store"`
	Minio  MinioConfig  `yaml:"minio"`
	Auth   AuthConfig   `yaml:"auth"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type StoreConfig struct {
	DataFile string `yaml:"data_file"`
}

type MinioConfig struct {
	Endpoint       string `yaml:"endpoint"`
	AccessKey      string `yaml:"access_key"`
	SecretKey      string `yaml:"secret_key"`
	Bucket         string `yaml:"bucket"`
	UseSSL         bool   `yaml:"use_ssl"`
	URLExpireHours int    `yaml:"url_expire_hours"`
}

type AuthConfig struct {
	// Password is the shared site password checked at login. When
	// PasswordHash is set it takes precedence and Password is ignored.
	Password         string `yaml:"password"`
	PasswordHash     string `yaml:"password_hash"`
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

var GlobalConfig *Config

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Store.DataFile == "" {
		cfg.Store.DataFile = "data/database.json"
	}
	if cfg.Minio.Bucket == "" {
		cfg.Minio.Bucket = "contract-files"
	}
	if cfg.Minio.URLExpireHours == 0 {
		cfg.Minio.URLExpireHours = 24
	}
	if cfg.Auth.TokenExpireHours == 0 {
		cfg.Auth.TokenExpireHours = 24
	}

	GlobalConfig = &cfg
	return &cfg, nil
}
