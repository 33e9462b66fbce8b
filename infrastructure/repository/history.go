package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/vfg2006/cet-calculator-api/infrastructure/database"
	"github.com/vfg2006/cet-calculator-api/internal/domain"
)

const historyTable = "comparison_history"

var historyColumns = []string{
	"id", "user_id", "name", "created_at", "current_rates", "new_rates", "volumes", "result",
}

type HistoryRepository interface {
	Save(ctx context.Context, entry *domain.ComparisonHistory) error
	ListByUser(ctx context.Context, userID int) ([]*domain.ComparisonHistory, error)
	GetByID(ctx context.Context, userID int, id string) (*domain.ComparisonHistory, error)
	Delete(ctx context.Context, userID int, id string) (bool, error)
	DeleteAllByUser(ctx context.Context, userID int) error
	ReplaceAll(ctx context.Context, userID int, entries []*domain.ComparisonHistory) error
	TrimToLimit(ctx context.Context, userID int, limit int) (int64, error)
}

type historyRepository struct {
	conn database.Conn
}

func NewHistoryRepository(conn database.Conn) HistoryRepository {
	return &historyRepository{
		conn: conn,
	}
}

func (r *historyRepository) Save(ctx context.Context, entry *domain.ComparisonHistory) error {
	query, args, err := r.insertQuery(r.conn.Builder(), entry)
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao salvar comparação")
	}

	return nil
}

func (r *historyRepository) insertQuery(builder squirrel.StatementBuilderType, entry *domain.ComparisonHistory) (string, []interface{}, error) {
	currentRates, err := toJSON(entry.CurrentRates)
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao serializar taxas atuais")
	}
	newRates, err := toJSON(entry.NewRates)
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao serializar taxas novas")
	}
	volumes, err := toJSON(entry.Volumes)
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao serializar volumes")
	}
	result, err := toJSON(entry.Result)
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao serializar resultado")
	}

	query, args, err := builder.
		Insert(historyTable).
		Columns(historyColumns...).
		Values(entry.ID, entry.UserID, entry.Name, entry.Date.UTC(), currentRates, newRates, volumes, result).
		ToSql()
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao construir consulta")
	}

	return query, args, nil
}

// ListByUser retorna o histórico do usuário, do mais recente para o mais antigo
func (r *historyRepository) ListByUser(ctx context.Context, userID int) ([]*domain.ComparisonHistory, error) {
	query, args, err := r.conn.Builder().
		Select(historyColumns...).
		From(historyTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar histórico")
	}
	defer rows.Close()

	entries := []*domain.ComparisonHistory{}
	for rows.Next() {
		entry, err := scanHistory(rows)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao processar resultado")
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "erro durante iteração")
	}

	return entries, nil
}

// GetByID retorna nil, nil quando a comparação não existe ou pertence a outro usuário
func (r *historyRepository) GetByID(ctx context.Context, userID int, id string) (*domain.ComparisonHistory, error) {
	query, args, err := r.conn.Builder().
		Select(historyColumns...).
		From(historyTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir consulta")
	}

	entry, err := scanHistory(r.conn.QueryRow(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar comparação")
	}

	return entry, nil
}

func (r *historyRepository) Delete(ctx context.Context, userID int, id string) (bool, error) {
	query, args, err := r.conn.Builder().
		Delete(historyTable).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "erro ao construir consulta")
	}

	res, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, errors.Wrap(err, "erro ao remover comparação")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "erro ao verificar remoção")
	}

	return affected > 0, nil
}

func (r *historyRepository) DeleteAllByUser(ctx context.Context, userID int) error {
	query, args, err := r.conn.Builder().
		Delete(historyTable).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir consulta")
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(err, "erro ao limpar histórico")
	}

	return nil
}

// ReplaceAll substitui todo o histórico do usuário em uma única transação
func (r *historyRepository) ReplaceAll(ctx context.Context, userID int, entries []*domain.ComparisonHistory) error {
	builder := r.conn.Builder()

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := builder.
			Delete(historyTable).
			Where(squirrel.Eq{"user_id": userID}).
			ToSql()
		if err != nil {
			return errors.Wrap(err, "erro ao construir consulta")
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrap(err, "erro ao limpar histórico")
		}

		for _, entry := range entries {
			entry.UserID = userID

			query, args, err := r.insertQuery(builder, entry)
			if err != nil {
				return err
			}

			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return errors.Wrapf(err, "erro ao importar comparação %s", entry.ID)
			}
		}

		return nil
	})
}

// TrimToLimit mantém apenas as limit comparações mais recentes do usuário
func (r *historyRepository) TrimToLimit(ctx context.Context, userID int, limit int) (int64, error) {
	if limit <= 0 {
		return 0, nil
	}

	// a subconsulta usa "?" e o placeholder do driver é aplicado na consulta externa
	keep := squirrel.
		Select("id").
		From(historyTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id ASC").
		Limit(uint64(limit))

	keepSQL, keepArgs, err := keep.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir consulta")
	}

	query, args, err := r.conn.Builder().
		Delete(historyTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Expr("id NOT IN (SELECT id FROM ("+keepSQL+") AS recent)", keepArgs...)).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "erro ao construir consulta")
	}

	res, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, errors.Wrap(err, "erro ao aplicar limite do histórico")
	}

	return res.RowsAffected()
}

func scanHistory(row scanner) (*domain.ComparisonHistory, error) {
	var entry domain.ComparisonHistory
	var currentRates, newRates, volumes, result string

	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Name,
		&entry.Date,
		&currentRates,
		&newRates,
		&volumes,
		&result,
	)
	if err != nil {
		return nil, err
	}

	if err := json.UnmarshalFromString(currentRates, &entry.CurrentRates); err != nil {
		return nil, err
	}
	if err := json.UnmarshalFromString(newRates, &entry.NewRates); err != nil {
		return nil, err
	}
	if err := json.UnmarshalFromString(volumes, &entry.Volumes); err != nil {
		return nil, err
	}
	if err := json.UnmarshalFromString(result, &entry.Result); err != nil {
		return nil, err
	}

	return &entry, nil
}
