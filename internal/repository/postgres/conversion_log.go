// Package postgres implements the repositories on PostgreSQL
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"tzconv/internal/models"
	"tzconv/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type conversionLogRepository struct {
	repository.BaseRepository
}

// NewConversionLogRepository creates a new PostgreSQL conversion log repository
func NewConversionLogRepository(db *sql.DB) repository.ConversionLogRepository {
	return &conversionLogRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

const conversionLogColumns = `id, source_zone, target_zone, input_time, output_time,
			   client_ip, user_agent, created_at`

func (r *conversionLogRepository) Create(ctx context.Context, req *models.CreateConversionLogRequest) (*models.ConversionLog, error) {
	query := `
		INSERT INTO conversion_logs (
			id, source_zone, target_zone, input_time, output_time,
			client_ip, user_agent, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)`

	log := &models.ConversionLog{
		ID:         uuid.New(),
		SourceZone: req.SourceZone,
		TargetZone: req.TargetZone,
		InputTime:  req.InputTime,
		OutputTime: req.OutputTime,
		ClientIP:   req.ClientIP,
		UserAgent:  req.UserAgent,
		CreatedAt:  time.Now().UTC(),
	}

	_, err := r.DB().ExecContext(ctx, query,
		log.ID,
		log.SourceZone,
		log.TargetZone,
		log.InputTime,
		log.OutputTime,
		log.ClientIP,
		log.UserAgent,
		log.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert conversion log: %w", err)
	}

	return log, nil
}

func (r *conversionLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ConversionLog, error) {
	query := `SELECT ` + conversionLogColumns + ` FROM conversion_logs WHERE id = $1`

	var log models.ConversionLog
	err := scanConversionLog(r.DB().QueryRowContext(ctx, query, id), &log)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &log, nil
}

// buildListQuery turns a filter into SQL; OrderBy is checked against a whitelist
func buildListQuery(filter repository.ConversionLogFilter) (string, []interface{}, error) {
	var conditions []string
	var params []interface{}
	paramCount := 1

	query := `SELECT ` + conversionLogColumns + ` FROM conversion_logs`

	if len(filter.SourceZones) > 0 {
		conditions = append(conditions, fmt.Sprintf("source_zone = ANY($%d)", paramCount))
		params = append(params, pq.Array(filter.SourceZones))
		paramCount++
	}

	if len(filter.TargetZones) > 0 {
		conditions = append(conditions, fmt.Sprintf("target_zone = ANY($%d)", paramCount))
		params = append(params, pq.Array(filter.TargetZones))
		paramCount++
	}

	if filter.ClientIP != nil {
		conditions = append(conditions, fmt.Sprintf("client_ip = $%d", paramCount))
		params = append(params, *filter.ClientIP)
		paramCount++
	}

	if filter.CreatedBefore != nil {
		conditions = append(conditions, fmt.Sprintf("created_at < $%d", paramCount))
		params = append(params, *filter.CreatedBefore)
		paramCount++
	}

	if filter.CreatedAfter != nil {
		conditions = append(conditions, fmt.Sprintf("created_at > $%d", paramCount))
		params = append(params, *filter.CreatedAfter)
		paramCount++
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	if filter.OrderBy != "" {
		if !repository.OrderableColumns[filter.OrderBy] {
			return "", nil, fmt.Errorf("%w: cannot order by %q", repository.ErrInvalidFilter, filter.OrderBy)
		}
		query += fmt.Sprintf(" ORDER BY %s", filter.OrderBy)
		if filter.OrderDesc {
			query += " DESC"
		}
	} else {
		query += " ORDER BY created_at DESC"
	}

	if filter.Limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", paramCount)
		params = append(params, *filter.Limit)
		paramCount++
	}

	if filter.Offset != nil {
		query += fmt.Sprintf(" OFFSET $%d", paramCount)
		params = append(params, *filter.Offset)
	}

	return query, params, nil
}

func (r *conversionLogRepository) List(ctx context.Context, filter repository.ConversionLogFilter) ([]models.ConversionLog, error) {
	query, params, err := buildListQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB().QueryContext(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	logs := make([]models.ConversionLog, 0)
	for rows.Next() {
		var log models.ConversionLog
		if err := scanConversionLog(rows, &log); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}

func (r *conversionLogRepository) CleanupOld(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `DELETE FROM conversion_logs WHERE created_at < $1`
	cutoff := time.Now().UTC().Add(-olderThan)
	res, err := r.DB().ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanConversionLog(row rowScanner, log *models.ConversionLog) error {
	return row.Scan(
		&log.ID,
		&log.SourceZone,
		&log.TargetZone,
		&log.InputTime,
		&log.OutputTime,
		&log.ClientIP,
		&log.UserAgent,
		&log.CreatedAt,
	)
}
