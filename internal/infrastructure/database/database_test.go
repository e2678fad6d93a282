package database

import (
	"context"
	"strings"
	"testing"

	"gorm.io/gorm/logger"
)

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "cemiterio_test")
	t.Setenv("DB_SSLMODE", "")

	dsn := postgresDSN()
	for _, want := range []string{"host=db", "dbname=cemiterio_test", "sslmode=disable", "port=5432"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("dsn %q missing %q", dsn, want)
		}
	}
}

func TestGetenvInt(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "7")
	if got := getenvInt("DB_MAX_OPEN_CONNS", 20); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	t.Setenv("DB_MAX_OPEN_CONNS", "abc")
	if got := getenvInt("DB_MAX_OPEN_CONNS", 20); got != 20 {
		t.Fatalf("expected default, got %d", got)
	}
}

func TestGormLogLevel(t *testing.T) {
	if gormLogLevel("silent") != logger.Silent || gormLogLevel("whatever") != logger.Warn {
		t.Fatalf("unexpected log level mapping")
	}
}

func TestNewDynamoDBConfigFromEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "sa-east-1")
	cfg, err := NewDynamoDBConfigFromEnv(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected sa-east-1, got %s", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected credentials error: %v", err)
	}
	if creds.AccessKeyID == "" {
		t.Fatalf("expected static credentials")
	}
}
