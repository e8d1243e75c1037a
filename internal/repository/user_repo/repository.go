package user_repo

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5/pgxpool"

	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"
)

const (
	table = "users"

	colID                   = "id"
	colUsername             = "username"
	colFirstName            = "first_name"
	colLastName             = "last_name"
	colNickname             = "nickname"
	colIsAdmin              = "is_admin"
	colBalance              = "balance"
	colTickets              = "tickets"
	colLastFreeSpin         = "last_free_spin"
	colReferredBy           = "referred_by"
	colReferralCount        = "referral_count"
	colReferralBonusTickets = "referral_bonus_tickets"
	colCreatedAt            = "created_at"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewUserRepository(dbc *pgxpool.Pool) repository.UserRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetUser - возвращает пользователя по Telegram ID
func (r *repo) GetUser(ctx context.Context, id int64) (*model.User, error) {
	// Формируем запрос
	query := sq.Select(colID, colUsername, colFirstName, colLastName, colNickname,
		colIsAdmin, colBalance, colTickets, colLastFreeSpin,
		colReferredBy, colReferralCount, colReferralBonusTickets).
		From(table).
		Where(sq.Eq{colID: id}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	var user model.User
	err = conn.QueryRow(ctx, sqlStr, args...).Scan(
		&user.ID, &user.Username, &user.FirstName, &user.LastName, &user.Nickname,
		&user.IsAdmin, &user.Balance, &user.Tickets, &user.LastFreeSpin,
		&user.ReferredBy, &user.ReferralCount, &user.ReferralBonusTickets,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &user, nil
}

// CreateUser - создает пользователя, если его еще нет.
// Повторная регистрация того же Telegram ID не ошибка
func (r *repo) CreateUser(ctx context.Context, user *model.User) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colID, colUsername, colFirstName, colLastName, colNickname, colReferredBy, colLastFreeSpin).
		Values(user.ID, user.Username, user.FirstName, user.LastName, user.Nickname, user.ReferredBy, user.LastFreeSpin).
		Suffix("ON CONFLICT (" + colID + ") DO NOTHING").
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

// ConsumeTicketAndCredit - списывает билет и начисляет выигрыш одним условным UPDATE.
// Таймер бесплатного прокрута сбрасывается, когда тратится последний билет.
// Возвращает остаток билетов; ok=false, если билетов не было (в том числе при гонке)
func (r *repo) ConsumeTicketAndCredit(ctx context.Context, id int64, amount int) (int, bool, error) {
	// Формируем запрос
	query := sq.Update(table).
		Set(colTickets, sq.Expr(colTickets+" - 1")).
		Set(colBalance, sq.Expr(colBalance+" + ?", amount)).
		Set(colLastFreeSpin, sq.Expr("CASE WHEN "+colTickets+" = 1 THEN NOW() ELSE "+colLastFreeSpin+" END")).
		Where(sq.And{
			sq.Eq{colID: id},
			sq.Gt{colTickets: 0},
		}).
		Suffix("RETURNING " + colTickets).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return 0, false, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	var remaining int
	err = conn.QueryRow(ctx, sqlStr, args...).Scan(&remaining)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return remaining, true, nil
}

// AddTickets - начисляет пользователю билеты
func (r *repo) AddTickets(ctx context.Context, id int64, count int) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colTickets, sq.Expr(colTickets+" + ?", count)).
		Where(sq.Eq{colID: id}).
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

// MarkFreeSpinGranted - сбрасывает таймер бесплатного прокрута на текущий момент
func (r *repo) MarkFreeSpinGranted(ctx context.Context, id int64) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colLastFreeSpin, sq.Expr("NOW()")).
		Where(sq.Eq{colID: id}).
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

// UpdateNickname - сохраняет никнейм, введенный в мини-приложении
func (r *repo) UpdateNickname(ctx context.Context, id int64, nickname string) error {
	// Формируем запрос
	query := sq.Update(table).
		Set(colNickname, nickname).
		Where(sq.Eq{colID: id}).
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
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

// GetLeaders - топ пользователей по балансу
func (r *repo) GetLeaders(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	// Формируем запрос
	query := sq.Select(colID, colUsername, colFirstName, colNickname, colBalance).
		From(table).
		OrderBy(colBalance+" DESC", colID+" ASC").
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

	var leaders []model.LeaderboardEntry
	position := 0
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.Nickname, &u.Balance); err != nil {
			return nil, err
		}
		position++
		leaders = append(leaders, model.LeaderboardEntry{
			Position: position,
			UserID:   u.ID,
			Name:     u.DisplayName(),
			Balance:  u.Balance,
		})
	}

	return leaders, rows.Err()
}

// GetReferrals - список приглашенных пользователем
func (r *repo) GetReferrals(ctx context.Context, id int64, limit, offset int) ([]model.ReferralInfo, error) {
	// Формируем запрос
	query := sq.Select(colID, colUsername, colFirstName, colNickname, colCreatedAt).
		From(table).
		Where(sq.Eq{colReferredBy: id}).
		OrderBy(colCreatedAt + " DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
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

	var referrals []model.ReferralInfo
	for rows.Next() {
		var u model.User
		var info model.ReferralInfo
		if err := rows.Scan(&u.ID, &u.Username, &u.FirstName, &u.Nickname, &info.JoinedAt); err != nil {
			return nil, err
		}
		info.UserID = u.ID
		info.Name = u.DisplayName()
		referrals = append(referrals, info)
	}

	return referrals, rows.Err()
}
