package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Skotchmaster/localshop/internal/db"
	"github.com/Skotchmaster/localshop/internal/hash"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	StoreDriver string
	DatabaseURL string
	RedisURL    string

	ClientSecret []byte
	ClientTTL    time.Duration
	PasswordHash string

	KafkaBrokers []string
}

// LoadDotEnv reads path into the environment when it exists.
func LoadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		log.Printf("Notice: %s file not found: %v. Using system environment variables", path, err)
	}
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "localshop"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 8080),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),

		StoreDriver: strings.ToLower(EnvDefault("STORE_DRIVER", db.DriverSQLite)),
		DatabaseURL: EnvDefault("DATABASE_URL", "shop.db"),
		RedisURL:    EnvDefault("REDIS_URL", "redis://localhost:6379/0"),

		ClientSecret: []byte(os.Getenv("CLIENT_SECRET")),
		ClientTTL:    time.Duration(EnvIntDefault("CLIENT_TTL_HOURS", 24*365)) * time.Hour,
		PasswordHash: strings.ToLower(EnvDefault("PASSWORD_HASH", hash.ModePlain)),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
	}
}

func (c Config) Validate() error {
	if len(c.ClientSecret) == 0 {
		return fmt.Errorf("missing required env CLIENT_SECRET")
	}
	switch c.StoreDriver {
	case db.DriverSQLite, db.DriverPostgres, db.DriverRedis, db.DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if _, err := hash.New(c.PasswordHash); err != nil {
		return err
	}
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		return fmt.Errorf("invalid SERVER_PORT %d", c.ServerPort)
	}
	return nil
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.ServerPort)
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func MustValid(c Config) {
	if err := c.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
}
