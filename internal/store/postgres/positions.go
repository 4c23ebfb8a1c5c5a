package postgres

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/moznion/go-optional"

	"github.com/quantpipe/quantpipe/internal/types"
	"github.com/quantpipe/quantpipe/pkg/errors"
)

// GetOpenPosition returns the pipeline's open position, or None when the
// pipeline holds nothing. A pipeline has at most one open position.
func (s *Store) GetOpenPosition(ctx context.Context, pipelineID int64) (optional.Option[types.Position], error) {
	query, args, err := s.sq.
		Select("id", "pipeline_id", "buy_order_id", "symbol", "entry_price", "quantity", "status", "opened_at", "closed_at").
		From("positions").
		Where(squirrel.Eq{
			"pipeline_id": pipelineID,
			"status":      string(types.PositionStatusOpen),
		}).
		OrderBy("opened_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return optional.None[types.Position](), errors.Wrap(errors.ErrCodeQueryFailed, "failed to build position query", err)
	}

	position, err := scanPosition(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return optional.None[types.Position](), nil
		}

		return optional.None[types.Position](), errors.Wrap(errors.ErrCodeQueryFailed, "failed to load open position", err)
	}

	return optional.Some(position), nil
}

// ListPositions returns the pipeline's positions, newest-first.
func (s *Store) ListPositions(ctx context.Context, pipelineID int64) ([]types.Position, error) {
	query, args, err := s.sq.
		Select("id", "pipeline_id", "buy_order_id", "symbol", "entry_price", "quantity", "status", "opened_at", "closed_at").
		From("positions").
		Where(squirrel.Eq{"pipeline_id": pipelineID}).
		OrderBy("opened_at DESC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build positions query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query positions", err)
	}
	defer rows.Close()

	var positions []types.Position

	for rows.Next() {
		position, err := scanPosition(rows)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan position row", err)
		}

		positions = append(positions, position)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to read position rows", err)
	}

	return positions, nil
}

func scanPosition(row pgx.Row) (types.Position, error) {
	var (
		position types.Position
		closedAt *time.Time
	)

	err := row.Scan(
		&position.ID,
		&position.PipelineID,
		&position.BuyOrderID,
		&position.Symbol,
		&position.EntryPrice,
		&position.Quantity,
		&position.Status,
		&position.OpenedAt,
		&closedAt,
	)
	if err != nil {
		return types.Position{}, err
	}

	position.ClosedAt = optional.FromNillable(closedAt)

	return position, nil
}
