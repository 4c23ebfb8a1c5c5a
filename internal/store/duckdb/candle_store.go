// Package duckdb implements the candle repository on an embedded DuckDB
// database.
package duckdb

import (
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/gocarina/gocsv"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/quantpipe/quantpipe/internal/logger"
	"github.com/quantpipe/quantpipe/internal/types"
	"github.com/quantpipe/quantpipe/pkg/errors"
)

const createCandlesTable = `
CREATE TABLE IF NOT EXISTS candles (
	symbol TEXT NOT NULL,
	market TEXT NOT NULL,
	timeframe TEXT NOT NULL,
	open_time TIMESTAMP NOT NULL,
	open DOUBLE NOT NULL,
	high DOUBLE NOT NULL,
	low DOUBLE NOT NULL,
	close DOUBLE NOT NULL,
	volume DOUBLE NOT NULL,
	PRIMARY KEY (symbol, market, timeframe, open_time)
);
`

// CandleStore stores and queries candlesticks in a DuckDB database file.
// Use ":memory:" as the path for an ephemeral store.
type CandleStore struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewCandleStore opens the database at the given path and ensures the
// candles table exists.
func NewCandleStore(path string, log *logger.Logger) (*CandleStore, error) {
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to open duckdb database", err)
	}

	if _, err := db.Exec(createCandlesTable); err != nil {
		db.Close()

		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to create candles table", err)
	}

	return &CandleStore{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// Close releases the underlying database handle.
func (s *CandleStore) Close() error {
	return s.db.Close()
}

// QueryCandles returns candles matching the query, newest-first.
func (s *CandleStore) QueryCandles(ctx context.Context, query types.CandleQuery) ([]types.Candlestick, error) {
	builder := s.sq.
		Select("symbol", "market", "timeframe", "open_time", "open", "high", "low", "close", "volume").
		From("candles").
		Where(squirrel.Eq{
			"symbol":    query.Symbol,
			"market":    string(query.Market),
			"timeframe": string(query.Timeframe),
		}).
		OrderBy("open_time DESC")

	if query.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"open_time": *query.From})
	}

	if query.To != nil {
		builder = builder.Where(squirrel.LtOrEq{"open_time": *query.To})
	}

	if query.Limit > 0 {
		builder = builder.Limit(uint64(query.Limit))
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build candle query", err)
	}

	rows, err := s.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query candles", err)
	}
	defer rows.Close()

	var candles []types.Candlestick

	for rows.Next() {
		var c types.Candlestick

		err := rows.Scan(&c.Symbol, &c.Market, &c.Timeframe, &c.OpenTime, &c.Open, &c.High, &c.Low, &c.Close, &c.Volume)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan candle row", err)
		}

		candles = append(candles, c)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to read candle rows", err)
	}

	return candles, nil
}

// InsertCandles writes the candles in one transaction. Existing rows for the
// same bar are replaced, so re-importing a range is safe.
func (s *CandleStore) InsertCandles(ctx context.Context, candles []types.Candlestick) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to begin transaction", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO candles (symbol, market, timeframe, open_time, open, high, low, close, volume)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()

		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to prepare insert statement", err)
	}
	defer stmt.Close()

	for _, c := range candles {
		_, err := stmt.ExecContext(ctx, c.Symbol, string(c.Market), string(c.Timeframe), c.OpenTime, c.Open, c.High, c.Low, c.Close, c.Volume)
		if err != nil {
			tx.Rollback()

			return errors.Wrap(errors.ErrCodeQueryFailed, "failed to insert candle", err)
		}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()

		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to commit candle insert", err)
	}

	return nil
}

// csvCandle is the row shape of exported candle CSV files.
type csvCandle struct {
	OpenTime time.Time `csv:"open_time"`
	Open     float64   `csv:"open"`
	High     float64   `csv:"high"`
	Low      float64   `csv:"low"`
	Close    float64   `csv:"close"`
	Volume   float64   `csv:"volume"`
}

// ImportCSV loads candles from a CSV file into the store, tagging every row
// with the given symbol, market, and timeframe. It returns the number of
// imported rows. Progress is reported on stderr when showProgress is set.
func (s *CandleStore) ImportCSV(ctx context.Context, csvPath, symbol string, market types.MarketType, timeframe types.Timeframe, showProgress bool) (int, error) {
	file, err := os.Open(csvPath)
	if err != nil {
		return 0, errors.Wrapf(errors.ErrCodeNotFound, err, "failed to open CSV file %s", csvPath)
	}
	defer file.Close()

	var rows []csvCandle
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidParameter, "failed to parse CSV file", err)
	}

	if len(rows) == 0 {
		return 0, nil
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(rows),
			progressbar.OptionSetDescription("Importing candles"),
			progressbar.OptionShowCount(),
		)
	}

	const batchSize = 1000

	imported := 0

	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))

		batch := make([]types.Candlestick, 0, end-start)
		for _, row := range rows[start:end] {
			batch = append(batch, types.Candlestick{
				Symbol:    symbol,
				Market:    market,
				Timeframe: timeframe,
				OpenTime:  row.OpenTime,
				Open:      row.Open,
				High:      row.High,
				Low:       row.Low,
				Close:     row.Close,
				Volume:    row.Volume,
			})
		}

		if err := s.InsertCandles(ctx, batch); err != nil {
			return imported, err
		}

		imported += len(batch)

		if bar != nil {
			_ = bar.Add(len(batch))
		}
	}

	s.logger.Info("imported candles",
		zap.String("symbol", symbol),
		zap.String("timeframe", string(timeframe)),
		zap.Int("count", imported),
	)

	return imported, nil
}
