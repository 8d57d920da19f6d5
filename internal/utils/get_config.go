package utils

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	// Database configuration
	DBDriver    string `yaml:"DB_DRIVER"`
	DBUser      string `yaml:"DB_USER"`
	DBName      string `yaml:"DB_NAME"`
	DBSchema    string `yaml:"DB_SCHEMA"`
	DBPassword  string `yaml:"DB_PASSWORD"`
	DBPort      string `yaml:"DB_PORT"`
	DBHost      string `yaml:"DB_HOST"`
	DBPath      string `yaml:"DB_PATH"`
	DBLogLevel  string `yaml:"DB_LOG_LEVEL"`
	AutoMigrate string `yaml:"AUTO_MIGRATE"`

	// Application
	AppPort         string `yaml:"APP_PORT"`
	AppURL          string `yaml:"APP_URL"`
	LogFile         string `yaml:"LOG_FILE"`
	RateLimit       string `yaml:"RATE_LIMIT"`
	JWTSecret       string `yaml:"JWT_SECRET"`
	AppPasswordHash string `yaml:"APP_PASSWORD_HASH"`

	// Views
	ViewWidth     string `yaml:"VIEW_WIDTH"`
	ViewHeight    string `yaml:"VIEW_HEIGHT"`
	ViewResizable string `yaml:"VIEW_RESIZABLE"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

var config = defaultConfig()

func defaultConfig() Config {
	return Config{
		DBDriver:      "mysql",
		DBHost:        "localhost",
		DBPort:        "3306",
		DBName:        "Tienda",
		DBUser:        "root",
		DBPath:        "inventory.db",
		DBLogLevel:    "warn",
		AutoMigrate:   "true",
		AppPort:       "8080",
		AppURL:        "http://localhost:8080",
		LogFile:       "./logs/app.log",
		RateLimit:     "20",
		ViewWidth:     "800",
		ViewHeight:    "600",
		ViewResizable: "false",
		AWSS3Region:   "eu-west-1",
	}
}

// keys maps every configuration key to its field so YAML, .env and the
// process environment all address the same names.
func (c *Config) keys() map[string]*string {
	return map[string]*string{
		"DB_DRIVER":          &c.DBDriver,
		"DB_USER":            &c.DBUser,
		"DB_NAME":            &c.DBName,
		"DB_SCHEMA":          &c.DBSchema,
		"DB_PASSWORD":        &c.DBPassword,
		"DB_PORT":            &c.DBPort,
		"DB_HOST":            &c.DBHost,
		"DB_PATH":            &c.DBPath,
		"DB_LOG_LEVEL":       &c.DBLogLevel,
		"AUTO_MIGRATE":       &c.AutoMigrate,
		"APP_PORT":           &c.AppPort,
		"APP_URL":            &c.AppURL,
		"LOG_FILE":           &c.LogFile,
		"RATE_LIMIT":         &c.RateLimit,
		"JWT_SECRET":         &c.JWTSecret,
		"APP_PASSWORD_HASH":  &c.AppPasswordHash,
		"VIEW_WIDTH":         &c.ViewWidth,
		"VIEW_HEIGHT":        &c.ViewHeight,
		"VIEW_RESIZABLE":     &c.ViewResizable,
		"SMTP_HOST":          &c.SMTPHost,
		"SMTP_PORT":          &c.SMTPPort,
		"SMTP_SENDER_NAME":   &c.SMTPSenderName,
		"SMTP_AUTH_EMAIL":    &c.SMTPAuthEmail,
		"SMTP_AUTH_PASSWORD": &c.SMTPAuthPassword,
		"AWS_S3_BUCKET":      &c.AWSS3Bucket,
		"AWS_S3_REGION":      &c.AWSS3Region,
		"AWS_ACCESS_KEY":     &c.AWSAccessKey,
		"AWS_SECRET_KEY":     &c.AWSSecretKey,
	}
}

// LoadConfig reads the YAML file at path, then lets a .env file and the
// process environment override individual keys. A missing YAML file is not
// an error.
func LoadConfig(path string) error {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Warnf("config file %s not found, using defaults and environment", path)
	case err != nil:
		return fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("error loading .env file: %v", err)
	}
	for key, field := range cfg.keys() {
		if v, ok := os.LookupEnv(key); ok {
			*field = v
		}
	}

	config = cfg
	return nil
}

func GetConfig(key string) string {
	if field, ok := config.keys()[key]; ok {
		return *field
	}
	return ""
}

// SetConfig overrides a single key, mostly for tests and CLI flags.
func SetConfig(key, value string) {
	if field, ok := config.keys()[key]; ok {
		*field = value
	}
}

// ResetConfig restores the built-in defaults.
func ResetConfig() {
	config = defaultConfig()
}

func GetConfigBool(key string, def bool) bool {
	v := strings.TrimSpace(GetConfig(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warnf("invalid boolean for %s: %s", key, v)
		return def
	}
	return b
}

func GetConfigInt(key string, def int) int {
	v := strings.TrimSpace(GetConfig(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warnf("invalid integer for %s: %s", key, v)
		return def
	}
	return n
}
