package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the service. Values are read by Viper
// from config.yaml or environment variables (SERVER_ADDRESS, AUTH_MODE, ...).
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Catalog CatalogConfig `mapstructure:"catalog"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// AuthConfig selects how requests are authenticated.
// Mode is one of "none", "jwt" or "api_key".
type AuthConfig struct {
	Mode      string `mapstructure:"mode"`
	JWTSecret string `mapstructure:"jwt_secret"`
	// APIKeyHash is a bcrypt hash of the accepted API key; the plaintext
	// key never appears in configuration.
	APIKeyHash string `mapstructure:"api_key_hash"`
}

// CatalogConfig selects where the exercise dataset is loaded from at
// startup. Source is one of "builtin", "file", "mongo" or "s3".
type CatalogConfig struct {
	Source string             `mapstructure:"source"`
	Path   string             `mapstructure:"path"`
	Mongo  MongoCatalogConfig `mapstructure:"mongo"`
	S3     S3CatalogConfig    `mapstructure:"s3"`
}

type MongoCatalogConfig struct {
	URI        string `mapstructure:"uri"`
	Database   string `mapstructure:"database"`
	Collection string `mapstructure:"collection"`
}

type S3CatalogConfig struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	ObjectKey       string `mapstructure:"object_key"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	// Nested keys map to env vars: catalog.mongo.uri -> CATALOG_MONGO_URI.
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("auth.mode", "none")
	viper.SetDefault("catalog.source", "builtin")
	viper.SetDefault("catalog.mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("catalog.mongo.database", "fitforge")
	viper.SetDefault("catalog.mongo.collection", "exercises")

	err = viper.ReadInConfig()
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		// No config file: defaults plus env vars are enough.
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return
	}

	return config, nil
}
