package postgres

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/moznion/go-optional"

	"github.com/quantpipe/quantpipe/internal/trading"
	"github.com/quantpipe/quantpipe/internal/types"
	"github.com/quantpipe/quantpipe/pkg/errors"
)

// CreateOrder inserts a new order row.
func (s *Store) CreateOrder(ctx context.Context, order types.Order) error {
	return insertOrder(ctx, s.pool, s.sq, order)
}

// UpdateOrder rewrites the mutable columns of an existing order.
func (s *Store) UpdateOrder(ctx context.Context, order types.Order) error {
	return updateOrder(ctx, s.pool, s.sq, order)
}

// GetOrder loads one order by id.
func (s *Store) GetOrder(ctx context.Context, id string) (types.Order, error) {
	query, args, err := s.sq.
		Select("id", "pipeline_id", "symbol", "market", "side", "quantity", "price", "status", "exchange_order_id", "created_at", "updated_at").
		From("orders").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return types.Order{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build order query", err)
	}

	var (
		order           types.Order
		exchangeOrderID *string
	)

	err = s.pool.QueryRow(ctx, query, args...).Scan(
		&order.ID,
		&order.PipelineID,
		&order.Symbol,
		&order.Market,
		&order.Side,
		&order.Quantity,
		&order.Price,
		&order.Status,
		&exchangeOrderID,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return types.Order{}, errors.Newf(errors.ErrCodeNotFound, "order %s not found", id)
		}

		return types.Order{}, errors.Wrap(errors.ErrCodeQueryFailed, "failed to load order", err)
	}

	order.ExchangeOrderID = optional.FromNillable(exchangeOrderID)

	return order, nil
}

// WithinTx runs fn inside one database transaction. The transaction commits
// when fn returns nil and rolls back otherwise.
func (s *Store) WithinTx(ctx context.Context, fn func(tx trading.OrderTx) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to begin transaction", err)
	}

	if err := fn(&orderTx{tx: tx, sq: s.sq}); err != nil {
		_ = tx.Rollback(ctx)

		return err
	}

	if err := tx.Commit(ctx); err != nil {
		_ = tx.Rollback(ctx)

		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to commit transaction", err)
	}

	return nil
}

// orderTx adapts a pgx transaction to the order transaction port.
type orderTx struct {
	tx pgx.Tx
	sq squirrel.StatementBuilderType
}

func (t *orderTx) UpdateOrder(ctx context.Context, order types.Order) error {
	return updateOrder(ctx, t.tx, t.sq, order)
}

func (t *orderTx) CreatePosition(ctx context.Context, position types.Position) error {
	query, args, err := t.sq.
		Insert("positions").
		Columns("id", "pipeline_id", "buy_order_id", "symbol", "entry_price", "quantity", "status", "opened_at", "closed_at").
		Values(
			position.ID,
			position.PipelineID,
			position.BuyOrderID,
			position.Symbol,
			position.EntryPrice,
			position.Quantity,
			string(position.Status),
			position.OpenedAt,
			nillable(position.ClosedAt),
		).
		ToSql()
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to build position insert", err)
	}

	if _, err := t.tx.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to insert position", err)
	}

	return nil
}

func (t *orderTx) ClosePositionByOrder(ctx context.Context, buyOrderID string, closedAt time.Time) error {
	query, args, err := t.sq.
		Update("positions").
		Set("status", string(types.PositionStatusClosed)).
		Set("closed_at", closedAt).
		Where(squirrel.Eq{
			"buy_order_id": buyOrderID,
			"status":       string(types.PositionStatusOpen),
		}).
		ToSql()
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to build position close", err)
	}

	tag, err := t.tx.Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to close position", err)
	}

	if tag.RowsAffected() == 0 {
		return errors.Newf(errors.ErrCodePositionNotFound, "no open position for order %s", buyOrderID)
	}

	return nil
}

// nillable converts an optional value to the pointer shape pgx expects for
// nullable columns.
func nillable[T any](o optional.Option[T]) *T {
	if o.IsNone() {
		return nil
	}

	v := o.Unwrap()

	return &v
}

func insertOrder(ctx context.Context, db querier, sq squirrel.StatementBuilderType, order types.Order) error {
	query, args, err := sq.
		Insert("orders").
		Columns("id", "pipeline_id", "symbol", "market", "side", "quantity", "price", "status", "exchange_order_id", "created_at", "updated_at").
		Values(
			order.ID,
			order.PipelineID,
			order.Symbol,
			string(order.Market),
			string(order.Side),
			order.Quantity,
			order.Price,
			string(order.Status),
			nillable(order.ExchangeOrderID),
			order.CreatedAt,
			order.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to build order insert", err)
	}

	if _, err := db.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to insert order", err)
	}

	return nil
}

func updateOrder(ctx context.Context, db querier, sq squirrel.StatementBuilderType, order types.Order) error {
	query, args, err := sq.
		Update("orders").
		Set("status", string(order.Status)).
		Set("exchange_order_id", nillable(order.ExchangeOrderID)).
		Set("updated_at", order.UpdatedAt).
		Where(squirrel.Eq{"id": order.ID}).
		ToSql()
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to build order update", err)
	}

	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to update order", err)
	}

	if tag.RowsAffected() == 0 {
		return errors.Newf(errors.ErrCodeNotFound, "order %s not found", order.ID)
	}

	return nil
}
