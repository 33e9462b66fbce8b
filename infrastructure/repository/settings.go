package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/vfg2006/cet-calculator-api/infrastructure/database"
	"github.com/vfg2006/cet-calculator-api/internal/domain"
)

const settingsTable = "user_settings"

type SettingsRepository interface {
	GetByUser(ctx context.Context, userID int) (*domain.Settings, error)
	Upsert(ctx context.Context, userID int, settings *domain.Settings) error
}

type settingsRepository struct {
	conn database.Conn
}

func NewSettingsRepository(conn database.Conn) SettingsRepository {
	return &settingsRepository{
		conn: conn,
	}
}

// GetByUser retorna nil, nil quando o usuário ainda não salvou preferências
func (r *settingsRepository) GetByUser(ctx context.Context, userID int) (*domain.Settings, error) {
	query, args, err := r.conn.Builder().
		Select("currency", "decimal_places", "auto_save", "backup_frequency", "theme", "updated_at").
		From(settingsTable).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	var settings domain.Settings
	var frequency string
	var updatedAt time.Time

	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&settings.Currency,
		&settings.DecimalPlaces,
		&settings.AutoSave,
		&frequency,
		&settings.Theme,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar configurações")
	}

	settings.BackupFrequency = domain.BackupFrequency(frequency)
	settings.UpdatedAt = &updatedAt

	return &settings, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, userID int, settings *domain.Settings) error {
	now := time.Now().UTC()

	query, args, err := r.conn.Builder().
		Insert(settingsTable).
		Columns("user_id", "currency", "decimal_places", "auto_save", "backup_frequency", "theme", "updated_at").
		Values(userID, settings.Currency, settings.DecimalPlaces, settings.AutoSave, string(settings.BackupFrequency), settings.Theme, now).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			currency = excluded.currency,
			decimal_places = excluded.decimal_places,
			auto_save = excluded.auto_save,
			backup_frequency = excluded.backup_frequency,
			theme = excluded.theme,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta")
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao salvar configurações")
	}

	settings.UpdatedAt = &now
	return nil
}
