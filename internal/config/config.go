package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr string

	DBHost string
	DBPort string
	DBUser string
	DBPass string
	DBName string

	RedisAddr string

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecret  string
	SessionTTL time.Duration

	UploadDir string
}

// Load reads configuration from the environment with sensible local
// defaults. KAFKA_BROKERS left empty disables event publishing.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_NAME", "foodorderweb")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("KAFKA_BROKERS", []string{})
	v.SetDefault("KAFKA_TOPIC", "order-topic")
	v.SetDefault("SESSION_TTL", time.Hour)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.AutomaticEnv()

	secret := v.GetString("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &Config{
		HTTPAddr:     v.GetString("HTTP_ADDR"),
		DBHost:       v.GetString("DB_HOST"),
		DBPort:       v.GetString("DB_PORT"),
		DBUser:       v.GetString("DB_USER"),
		DBPass:       v.GetString("DB_PASS"),
		DBName:       v.GetString("DB_NAME"),
		RedisAddr:    v.GetString("REDIS_ADDR"),
		KafkaBrokers: v.GetStringSlice("KAFKA_BROKERS"),
		KafkaTopic:   v.GetString("KAFKA_TOPIC"),
		JWTSecret:    secret,
		SessionTTL:   v.GetDuration("SESSION_TTL"),
		UploadDir:    v.GetString("UPLOAD_DIR"),
	}, nil
}

// DSN builds the MySQL connection string. clientFoundRows makes UPDATE
// report matched rows, so saving identical values is not mistaken for a
// vanished row.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&clientFoundRows=true",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}
