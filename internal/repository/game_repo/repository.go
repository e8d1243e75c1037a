package game_repo

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"
)

const (
	table        = "games"
	colID        = "id"
	colUserID    = "user_id"
	colResult    = "result"
	colCreatedAt = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewGameRepository(dbc *pgxpool.Pool) repository.GameRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateGame - добавляет запись истории прокрута. Записи только добавляются,
// существующие никогда не меняются
func (r *repo) CreateGame(ctx context.Context, userID int64, result int) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colUserID, colResult).
		Values(userID, result).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	_, err = conn.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetGamesByUser - последние прокруты пользователя
func (r *repo) GetGamesByUser(ctx context.Context, userID int64, limit int) ([]model.Game, error) {
	// Формируем запрос
	query := sq.Select(colID, colUserID, colResult, colCreatedAt).
		From(table).
		Where(sq.Eq{colUserID: userID}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	rows, err := conn.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []model.Game
	for rows.Next() {
		var g model.Game
		if err := rows.Scan(&g.ID, &g.UserID, &g.Result, &g.CreatedAt); err != nil {
			return nil, err
		}
		games = append(games, g)
	}

	return games, rows.Err()
}
