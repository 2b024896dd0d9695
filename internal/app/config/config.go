package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr      string
	DatabaseURL   string // optional; history falls back to memory when empty
	InternalToken string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	DescribeDelay time.Duration
}

func MustLoad() Config {
	return Config{
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		DatabaseURL:   env("DATABASE_URL", ""),
		InternalToken: mustEnv("INTERNAL_TOKEN"),
		SMTPHost:      env("SMTP_HOST", ""),
		// 587 is submission with STARTTLS, the only mode the SMTP
		// client speaks; 465 (implicit TLS) would never handshake.
		SMTPPort:      env("SMTP_PORT", "587"),
		SMTPUser:      env("SMTP_USER", ""),
		SMTPPassword:  env("SMTP_PASSWORD", ""),
		SMTPFrom:      env("SMTP_FROM", "quotes@centurycleaning.rw"),
		DescribeDelay: envMillis("DESCRIBE_DELAY_MS", 100),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

func envMillis(k string, def int64) time.Duration {
	if v := os.Getenv(k); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			log.Fatalf("invalid %s: %s", k, v)
		}
		return time.Duration(n) * time.Millisecond
	}
	return time.Duration(def) * time.Millisecond
}
