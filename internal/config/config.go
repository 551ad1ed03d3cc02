package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Lookup LookupConfig
	Codes  CodesConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds attachment storage settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Debug reports whether debug lines should be logged.
func (l LogConfig) Debug() bool {
	return strings.EqualFold(l.Level, "debug")
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LookupConfig holds the PIN code and IFSC lookup endpoints.
type LookupConfig struct {
	PincodeBaseURL string        `mapstructure:"pincode_base_url"`
	IFSCBaseURL    string        `mapstructure:"ifsc_base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// CodesConfig holds customer code generation settings.
type CodesConfig struct {
	MaxLength  int `mapstructure:"max_length"`
	MaxRetries int `mapstructure:"max_retries"`
}

// Load reads configuration from environment variables with the TMS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("TMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "tms")
	v.SetDefault("db.password", "tms_secret")
	v.SetDefault("db.name", "tms_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "tms")

	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "tms-attachments")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 10)
	v.SetDefault("s3.presign_expiry", 900)

	v.SetDefault("log.level", "info")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	v.SetDefault("lookup.pincode_base_url", "https://api.postalpincode.in")
	v.SetDefault("lookup.ifsc_base_url", "https://ifsc.razorpay.com")
	v.SetDefault("lookup.timeout", "5s")

	v.SetDefault("codes.max_length", 3)
	v.SetDefault("codes.max_retries", 3)

	envBindings := map[string]string{
		"server.port":             "TMS_SERVER_PORT",
		"server.read_timeout":     "TMS_SERVER_READ_TIMEOUT",
		"server.write_timeout":    "TMS_SERVER_WRITE_TIMEOUT",
		"server.environment":      "TMS_SERVER_ENVIRONMENT",
		"db.host":                 "TMS_DB_HOST",
		"db.port":                 "TMS_DB_PORT",
		"db.user":                 "TMS_DB_USER",
		"db.password":             "TMS_DB_PASSWORD",
		"db.name":                 "TMS_DB_NAME",
		"db.sslmode":              "TMS_DB_SSLMODE",
		"db.max_open":             "TMS_DB_MAX_OPEN",
		"db.max_idle":             "TMS_DB_MAX_IDLE",
		"jwt.secret":              "TMS_JWT_SECRET",
		"jwt.access_expiry":       "TMS_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":      "TMS_JWT_REFRESH_EXPIRY",
		"jwt.issuer":              "TMS_JWT_ISSUER",
		"s3.region":               "TMS_S3_REGION",
		"s3.bucket":               "TMS_S3_BUCKET",
		"s3.endpoint":             "TMS_S3_ENDPOINT",
		"s3.access_key":           "TMS_S3_ACCESS_KEY",
		"s3.secret_key":           "TMS_S3_SECRET_KEY",
		"s3.max_file_size_mb":     "TMS_S3_MAX_FILE_SIZE_MB",
		"s3.presign_expiry":       "TMS_S3_PRESIGN_EXPIRY",
		"log.level":               "TMS_LOG_LEVEL",
		"cors.allowed_origins":    "TMS_CORS_ALLOWED_ORIGINS",
		"lookup.pincode_base_url": "TMS_LOOKUP_PINCODE_BASE_URL",
		"lookup.ifsc_base_url":    "TMS_LOOKUP_IFSC_BASE_URL",
		"lookup.timeout":          "TMS_LOOKUP_TIMEOUT",
		"codes.max_length":        "TMS_CODES_MAX_LENGTH",
		"codes.max_retries":       "TMS_CODES_MAX_RETRIES",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TMS_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TMS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level: v.GetString("log.level"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Lookup = LookupConfig{
		PincodeBaseURL: strings.TrimRight(v.GetString("lookup.pincode_base_url"), "/"),
		IFSCBaseURL:    strings.TrimRight(v.GetString("lookup.ifsc_base_url"), "/"),
		Timeout:        v.GetDuration("lookup.timeout"),
	}
	cfg.Codes = CodesConfig{
		MaxLength:  v.GetInt("codes.max_length"),
		MaxRetries: v.GetInt("codes.max_retries"),
	}

	if cfg.Codes.MaxLength < 1 {
		return nil, fmt.Errorf("codes.max_length must be positive, got %d", cfg.Codes.MaxLength)
	}
	if cfg.Codes.MaxRetries < 1 {
		return nil, fmt.Errorf("codes.max_retries must be positive, got %d", cfg.Codes.MaxRetries)
	}

	return cfg, nil
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	return out
}
