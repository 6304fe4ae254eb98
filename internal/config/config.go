package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort string
	JWTSecret  string
	Timezone   string

	// Shop floor opening window; slots are generated inside it.
	OpenTime    string
	CloseTime   string
	SlotMinutes int

	// Base availability draw: deterministic seed and the fraction of
	// slots left open before the ledger is consulted.
	AvailabilitySeed int64
	AvailabilityRate float64

	SessionTTL time.Duration

	// Optional redis backend for session snapshots; empty means in-process.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		Timezone:   getEnv("SHOP_TIMEZONE", "America/New_York"),

		OpenTime:    getEnv("SHOP_OPEN", "09:00"),
		CloseTime:   getEnv("SHOP_CLOSE", "18:00"),
		SlotMinutes: getEnvInt("SLOT_MINUTES", 30),

		AvailabilitySeed: int64(getEnvInt("AVAILABILITY_SEED", 316)),
		AvailabilityRate: getEnvFloat("AVAILABILITY_RATE", 0.7),

		SessionTTL: time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
