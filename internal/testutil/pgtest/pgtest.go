//go:build integration
// +build integration

// Package pgtest starts a throwaway, migrated PostgreSQL for integration tests.
package pgtest

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/etfpulse/db"
)

const (
	image    = "postgres:15-alpine"
	user     = "postgres"
	password = "postgres"
	dbName   = "etfpulse"
)

// Instance is a running container with an open, migrated connection.
type Instance struct {
	DB       *sql.DB
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

// Start launches the container and registers its teardown with t.Cleanup.
func Start(t testing.TB) *Instance {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        image,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       dbName,
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": password,
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return dsn(host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	mapped, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	conn, err := sql.Open("postgres", dsn(host, mapped.Port()))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if err := conn.PingContext(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return &Instance{
		DB:       conn,
		Host:     host,
		Port:     mapped.Int(),
		User:     user,
		Password: password,
		Name:     dbName,
	}
}

func dsn(host, port string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbName)
}
