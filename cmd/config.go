package cmd

import (
	"fmt"
	"time"
)

type Config struct {
	HTTPPort     string
	CookieSecure bool

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CartTTL       time.Duration

	GuestTokenSecret string
	GuestTokenTTL    time.Duration

	AdminAlertNumber string
	EmailFrom        string

	LowStockThreshold int
	LowStockCron      string
}

// PostgresDSN builds a lib/pq connection string.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
