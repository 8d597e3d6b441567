package app

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/guttosm/etfpulse/config"
)

func withSQLOpener(t *testing.T, open func(driverName, dsn string) (*sql.DB, error)) {
	t.Helper()
	old := sqlOpener
	sqlOpener = open
	t.Cleanup(func() { sqlOpener = old })
}

func TestInitPostgres(t *testing.T) {
	cfg := config.Config{Postgres: config.PostgresConfig{
		User: "etl", Password: "secret", Host: "db", Port: 6543, DBName: "etfpulse", SSLMode: "require",
	}}

	cases := []struct {
		name    string
		openErr error
		pingErr error
		wantErr bool
	}{
		{name: "connected"},
		{name: "open fails", openErr: errors.New("open failed"), wantErr: true},
		{name: "ping fails", pingErr: errors.New("ping failed"), wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotDriver, gotDSN string
			withSQLOpener(t, func(driverName, dsn string) (*sql.DB, error) {
				gotDriver, gotDSN = driverName, dsn
				if tc.openErr != nil {
					return nil, tc.openErr
				}
				db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
				if err != nil {
					t.Fatalf("sqlmock new: %v", err)
				}
				ping := mock.ExpectPing()
				if tc.pingErr != nil {
					ping.WillReturnError(tc.pingErr)
				}
				return db, nil
			})

			db, err := InitPostgres(cfg)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer func() { _ = db.Close() }()

			if gotDriver != "postgres" {
				t.Fatalf("driver=%q", gotDriver)
			}
			if want := "postgres://etl:secret@db:6543/etfpulse?sslmode=require"; gotDSN != want {
				t.Fatalf("dsn=%q want %q", gotDSN, want)
			}
		})
	}
}
