package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Cognito  CognitoConfig  `mapstructure:"cognito"  validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// CognitoConfig contains the settings for the AWS Cognito user pool that
// performs password authentication for the API. All three values are
// supplied through the environment or a config file and are never
// hardcoded.
type CognitoConfig struct {
	Region     string `mapstructure:"region"       validate:"required"`
	UserPoolID string `mapstructure:"user_pool_id" validate:"required"`
	ClientID   string `mapstructure:"client_id"    validate:"required"`
}
