package auth_repo

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
	table          = "sessions"
	colSessionID   = "session_id"
	colAdminID     = "admin_id"
	colRefreshHash = "refresh_hash"
	colExpiredTime = "expired_time"

	adminsTable     = "admins"
	colID           = "id"
	colLogin        = "login"
	colPasswordHash = "password_hash"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewAuthRepository(dbc *pgxpool.Pool) repository.AuthRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// GetAdminByLogin - возвращает администратора по логину
func (r *repo) GetAdminByLogin(ctx context.Context, login string) (*model.Admin, error) {
	// Формируем запрос
	query := sq.Select(colID, colLogin, colPasswordHash).
		From(adminsTable).
		Where(sq.Eq{colLogin: login}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	var admin model.Admin
	err = conn.QueryRow(ctx, sqlStr, args...).Scan(&admin.ID, &admin.Login, &admin.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &admin, nil
}

// CreateSession - создает сессию администратора в БД
func (r *repo) CreateSession(ctx context.Context, session *model.Session) error {
	// Формируем запрос
	query := sq.Insert(table).
		Columns(colSessionID, colAdminID, colRefreshHash, colExpiredTime).
		Values(session.ID, session.AdminID, session.RefreshToken, session.ExpiresAt).
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

// GetRefreshTokenBySessionID - получить хэш refresh токена по session ID
func (r *repo) GetRefreshTokenBySessionID(ctx context.Context, sessionID string) (string, error) {
	// Формируем запрос
	query := sq.Select(colRefreshHash).
		From(table).
		Where(sq.Eq{colSessionID: sessionID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return "", err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	var refreshHash string
	err = conn.QueryRow(ctx, sqlStr, args...).Scan(&refreshHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", repository.ErrNotFound
		}
		return "", err
	}

	return refreshHash, nil
}

// GetAdminBySessionID - возвращает администратора по session ID
func (r *repo) GetAdminBySessionID(ctx context.Context, sessionID string) (*model.Admin, error) {
	// Формируем запрос
	query := sq.Select("a."+colID, "a."+colLogin, "a."+colPasswordHash).
		From(table + " s").
		Join(adminsTable + " a ON s." + colAdminID + " = a." + colID).
		Where(sq.Eq{"s." + colSessionID: sessionID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	var admin model.Admin
	err = conn.QueryRow(ctx, sqlStr, args...).Scan(&admin.ID, &admin.Login, &admin.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &admin, nil
}

// DeleteSession - удаляет сессию из БД
func (r *repo) DeleteSession(ctx context.Context, sessionID string) error {
	// Формируем запрос
	query := sq.Delete(table).
		Where(sq.Eq{colSessionID: sessionID}).
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
