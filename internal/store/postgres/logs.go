package postgres

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/quantpipe/quantpipe/internal/types"
	"github.com/quantpipe/quantpipe/pkg/errors"
)

// WriteExecutionLog appends one audit record.
func (s *Store) WriteExecutionLog(ctx context.Context, record types.ExecutionLog) error {
	query, args, err := s.sq.
		Insert("execution_logs").
		Columns("pipeline_id", "execution_id", "step_key", "outcome", "message", "context_snapshot", "started_at", "finished_at").
		Values(
			record.PipelineID,
			record.ExecutionID,
			record.StepKey,
			string(record.Outcome),
			record.Message,
			record.ContextSnapshot,
			record.StartedAt,
			record.FinishedAt,
		).
		ToSql()
	if err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to build execution log insert", err)
	}

	if _, err := s.pool.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(errors.ErrCodeQueryFailed, "failed to insert execution log", err)
	}

	return nil
}

// ListExecutionLogs returns the audit records of one execution in step order.
func (s *Store) ListExecutionLogs(ctx context.Context, pipelineID int64, executionID string) ([]types.ExecutionLog, error) {
	query, args, err := s.sq.
		Select("pipeline_id", "execution_id", "step_key", "outcome", "message", "context_snapshot", "started_at", "finished_at").
		From("execution_logs").
		Where(squirrel.Eq{
			"pipeline_id":  pipelineID,
			"execution_id": executionID,
		}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build execution log query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query execution logs", err)
	}
	defer rows.Close()

	var records []types.ExecutionLog

	for rows.Next() {
		var record types.ExecutionLog

		err := rows.Scan(
			&record.PipelineID,
			&record.ExecutionID,
			&record.StepKey,
			&record.Outcome,
			&record.Message,
			&record.ContextSnapshot,
			&record.StartedAt,
			&record.FinishedAt,
		)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan execution log row", err)
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to read execution log rows", err)
	}

	return records, nil
}
