package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/guttosm/etfpulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// PostgresRepository serves the catalog and price series from PostgreSQL and
// implements the ingestion write path. Schema lives in db/migrations.
type PostgresRepository struct {
	db *sql.DB
}

var (
	_ ETFRepository       = (*PostgresRepository)(nil)
	_ PriceRepository     = (*PostgresRepository)(nil)
	_ IngestionRepository = (*PostgresRepository)(nil)
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// ListETFs returns the whole catalog ordered by symbol.
func (r *PostgresRepository) ListETFs(ctx context.Context) ([]models.ETF, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT symbol, name, currency, inception_date FROM etfs ORDER BY symbol`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	etfs := []models.ETF{}
	for rows.Next() {
		var e models.ETF
		if err := rows.Scan(&e.Symbol, &e.Name, &e.Currency, &e.InceptionDate); err != nil {
			return nil, err
		}
		etfs = append(etfs, e)
	}
	return etfs, rows.Err()
}

// GetETF looks up one fund by its normalized symbol.
func (r *PostgresRepository) GetETF(ctx context.Context, symbol string) (*models.ETF, error) {
	normalized := NormalizeSymbol(symbol)

	var e models.ETF
	err := r.db.QueryRowContext(ctx,
		`SELECT symbol, name, currency, inception_date FROM etfs WHERE symbol = $1`, normalized,
	).Scan(&e.Symbol, &e.Name, &e.Currency, &e.InceptionDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &NotFoundError{Resource: "etf", Key: normalized, Message: "Unknown symbol: " + normalized}
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetPrices returns every stored close for symbol, oldest first.
// An unknown symbol yields an empty slice; callers decide whether that is a 404.
func (r *PostgresRepository) GetPrices(ctx context.Context, symbol string) ([]models.PricePoint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT price_date, close FROM prices WHERE symbol = $1 ORDER BY price_date`, NormalizeSymbol(symbol))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	points := []models.PricePoint{}
	for rows.Next() {
		var p models.PricePoint
		if err := rows.Scan(&p.Date, &p.Close); err != nil {
			return nil, err
		}
		p.Date = toDate(p.Date)
		points = append(points, p)
	}
	return points, rows.Err()
}

// UpsertETFs inserts or refreshes catalog rows in a single transaction.
func (r *PostgresRepository) UpsertETFs(ctx context.Context, etfs []models.ETF) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, e := range etfs {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO etfs (symbol, name, currency, inception_date)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (symbol)
		DO UPDATE SET name = EXCLUDED.name,
					  currency = EXCLUDED.currency,
					  inception_date = EXCLUDED.inception_date
	`, e.Symbol, e.Name, e.Currency, e.InceptionDate); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// InsertPricesBatch bulk loads points for symbol with COPY in a single transaction.
func (r *PostgresRepository) InsertPricesBatch(ctx context.Context, symbol string, points []models.PricePoint) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	// Small optimization for bulk load
	if _, err := tx.ExecContext(ctx, `SET LOCAL synchronous_commit = OFF`); err != nil {
		_ = tx.Rollback()
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("prices", "symbol", "price_date", "close"))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	normalized := NormalizeSymbol(symbol)
	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, normalized, toDate(p.Date), p.Close); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// HasIngestionForSymbol checks if a price file was already loaded for symbol.
func (r *PostgresRepository) HasIngestionForSymbol(ctx context.Context, symbol string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM ingestion_log WHERE symbol = $1)`, NormalizeSymbol(symbol),
	).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertIngestionLog records (or updates) the ingestion entry for symbol.
func (r *PostgresRepository) UpsertIngestionLog(ctx context.Context, symbol, filename string, rowCount int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ingestion_log (symbol, filename, row_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (symbol)
		DO UPDATE SET filename = EXCLUDED.filename,
					  row_count = EXCLUDED.row_count,
					  ingested_at = NOW()
	`, NormalizeSymbol(symbol), filename, rowCount)
	return err
}

// DeletePricesBySymbol removes all stored closes for symbol.
func (r *PostgresRepository) DeletePricesBySymbol(ctx context.Context, symbol string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM prices WHERE symbol = $1`, NormalizeSymbol(symbol))
	return err
}

// Ping reports whether the database is reachable.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
