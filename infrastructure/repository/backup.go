package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/vfg2006/cet-calculator-api/infrastructure/database"
	"github.com/vfg2006/cet-calculator-api/internal/domain"
)

const backupsTable = "history_backups"

type BackupRepository interface {
	Save(ctx context.Context, backup *domain.HistoryBackup) error
	GetLatestByUser(ctx context.Context, userID int) (*domain.HistoryBackup, error)
}

type backupRepository struct {
	conn database.Conn
}

func NewBackupRepository(conn database.Conn) BackupRepository {
	return &backupRepository{
		conn: conn,
	}
}

func (r *backupRepository) Save(ctx context.Context, backup *domain.HistoryBackup) error {
	query, args, err := r.conn.Builder().
		Insert(backupsTable).
		Columns("id", "user_id", "entries", "payload", "created_at").
		Values(backup.ID, backup.UserID, backup.Entries, string(backup.Payload), backup.CreatedAt.UTC()).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta")
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao salvar backup do histórico")
	}

	return nil
}

// GetLatestByUser retorna nil, nil quando o usuário não possui backup
func (r *backupRepository) GetLatestByUser(ctx context.Context, userID int) (*domain.HistoryBackup, error) {
	query, args, err := r.conn.Builder().
		Select("id", "user_id", "entries", "payload", "created_at").
		From(backupsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	var backup domain.HistoryBackup
	var payload string

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&backup.ID,
		&backup.UserID,
		&backup.Entries,
		&payload,
		&backup.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar backup do histórico")
	}

	backup.Payload = []byte(payload)
	return &backup, nil
}
