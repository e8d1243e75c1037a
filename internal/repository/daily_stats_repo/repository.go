package daily_stats_repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"
)

const (
	table         = "daily_stats"
	colDate       = "date"
	colTotalWins  = "total_wins"
	colSpinsCount = "spins_count"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewDailyStatsRepository(dbc *pgxpool.Pool) repository.DailyStatsRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetToday - получение агрегата за текущий день.
// Если записи нет, создает новую с нулевыми счетчиками
func (r *repo) GetToday(ctx context.Context) (*model.DailyStats, error) {
	today := todayDate()

	// Формируем запрос
	query := sq.Select(colDate, colTotalWins, colSpinsCount).
		From(table).
		Where(sq.Eq{colDate: today}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	var stats model.DailyStats
	err = conn.QueryRow(ctx, sqlStr, args...).Scan(&stats.Date, &stats.TotalWins, &stats.SpinsCount)
	if err == nil {
		return &stats, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// Записи за сегодня еще нет - создаем нулевую
	insertQuery := sq.Insert(table).
		Columns(colDate, colTotalWins, colSpinsCount).
		Values(today, 0, 0).
		Suffix("ON CONFLICT (" + colDate + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err = insertQuery.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = conn.Exec(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}

	return &model.DailyStats{Date: today}, nil
}

// IncrementToday - атомарно добавляет amount к сумме выплат и 1 к числу прокрутов.
// Строго один UPDATE поверх текущей строки, без чтения-модификации-записи
func (r *repo) IncrementToday(ctx context.Context, amount int) error {
	today := todayDate()

	// Формируем запрос
	query := sq.Update(table).
		Set(colTotalWins, sq.Expr(colTotalWins+" + ?", amount)).
		Set(colSpinsCount, sq.Expr(colSpinsCount+" + 1")).
		Where(sq.Eq{colDate: today}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	res, err := conn.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	rowsAffected := res.RowsAffected()

	// Если rowsAffected = 0 - записи за сегодня нет, вставляем сразу со значениями.
	// ON CONFLICT доинкрементит, если параллельный прокрут успел вставить первым
	if rowsAffected == 0 {
		insertQuery := sq.Insert(table).
			Columns(colDate, colTotalWins, colSpinsCount).
			Values(today, amount, 1).
			Suffix("ON CONFLICT (" + colDate + ") DO UPDATE SET " +
				colTotalWins + " = " + table + "." + colTotalWins + " + EXCLUDED." + colTotalWins + ", " +
				colSpinsCount + " = " + table + "." + colSpinsCount + " + EXCLUDED." + colSpinsCount).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err = insertQuery.ToSql()
		if err != nil {
			return err
		}

		_, err = conn.Exec(ctx, sqlStr, args...)
		if err != nil {
			return err
		}
	}

	return nil
}

// todayDate - текущая календарная дата сервера (полночь локального времени)
func todayDate() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
