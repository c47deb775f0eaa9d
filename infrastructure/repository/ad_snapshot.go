package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-transparency-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-transparency-api/internal/domain"
)

const adSnapshotsTable = "ad_snapshots s"

type AdSnapshotRepository interface {
	GetByAdIDAndDate(adID int64, date time.Time) (*domain.AdSnapshotEntry, error)
	GetByDateRange(startDate, endDate time.Time) ([]*domain.AdSnapshotEntry, error)
	SaveOrUpdate(snapshot *domain.AdSnapshotEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type adSnapshotRepository struct {
	conn *postgres.Connection
}

func NewAdSnapshotRepository(conn *postgres.Connection) AdSnapshotRepository {
	return &adSnapshotRepository{
		conn: conn,
	}
}

func (r *adSnapshotRepository) GetByAdIDAndDate(adID int64, date time.Time) (*domain.AdSnapshotEntry, error) {
	query, args, err := squirrel.
		Select("s.id, s.ad_id, s.date, s.ad_row, s.created_at, s.updated_at").
		From(adSnapshotsTable).
		Where(squirrel.Eq{"s.ad_id": adID, "s.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	snapshot, err := r.scanSnapshot(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *adSnapshotRepository) GetByDateRange(startDate, endDate time.Time) ([]*domain.AdSnapshotEntry, error) {
	query, args, err := squirrel.
		Select("s.id, s.ad_id, s.date, s.ad_row, s.created_at, s.updated_at").
		From(adSnapshotsTable).
		Where(squirrel.GtOrEq{"s.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"s.date": endDate.Format("2006-01-02")}).
		OrderBy("s.date ASC, s.ad_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.AdSnapshotEntry, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshotRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *adSnapshotRepository) SaveOrUpdate(snapshot *domain.AdSnapshotEntry) error {
	var adRowJSON []byte
	var err error

	if snapshot.Row != nil {
		adRowJSON, err = json.Marshal(snapshot.Row)
		if err != nil {
			return fmt.Errorf("erro ao serializar linha do anúncio para JSON: %w", err)
		}
	}

	query := squirrel.StatementBuilder.
		Insert("ad_snapshots").
		Columns("ad_id", "date", "ad_row").
		Values(
			snapshot.AdID,
			snapshot.Date.Format("2006-01-02"),
			adRowJSON,
		).
		Suffix(`
			ON CONFLICT (ad_id, date) DO UPDATE SET
				ad_row = EXCLUDED.ad_row,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *adSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format("2006-01-02")

	query, args, err := squirrel.
		Delete("ad_snapshots").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *adSnapshotRepository) scanSnapshot(row *sql.Row) (*domain.AdSnapshotEntry, error) {
	snapshot := &domain.AdSnapshotEntry{}
	var adRowJSON []byte
	var dateStr string

	err := row.Scan(
		&snapshot.ID,
		&snapshot.AdID,
		&dateStr,
		&adRowJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, fmt.Errorf("erro ao converter data: %w", err)
	}
	snapshot.Date = date

	if adRowJSON != nil {
		adRow := &domain.AdRow{}
		if err := json.Unmarshal(adRowJSON, adRow); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de ad_row: %w", err)
		}
		snapshot.Row = adRow
	}

	return snapshot, nil
}

func (r *adSnapshotRepository) scanSnapshotRows(rows *sql.Rows) (*domain.AdSnapshotEntry, error) {
	snapshot := &domain.AdSnapshotEntry{}
	var adRowJSON []byte

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.AdID,
		&snapshot.Date,
		&adRowJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if adRowJSON != nil {
		adRow := &domain.AdRow{}
		if err := json.Unmarshal(adRowJSON, adRow); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de ad_row: %w", err)
		}
		snapshot.Row = adRow
	}

	return snapshot, nil
}
