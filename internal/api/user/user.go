package user

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	dto "wheel_backend/internal/api/dto/user"
	"wheel_backend/internal/converter"
	"wheel_backend/internal/middleware"
	"wheel_backend/internal/model"
	"wheel_backend/internal/repository"
	"wheel_backend/internal/service"
	userServ "wheel_backend/internal/service/user"
	"wheel_backend/pkg/req"
	"wheel_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.UserService
}

type Handler struct {
	serv service.UserService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Profile - профиль авторизованного пользователя
func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.serv.Profile(r.Context(), userID)
	if errors.Is(err, repository.ErrNotFound) {
		// Первый заход из мини-приложения - заводим пользователя
		// из проверенных данных initData
		tg, tgOK := middleware.TelegramUserFromContext(r.Context())
		if !tgOK {
			resp.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		user, err = h.serv.Register(r.Context(), &model.User{
			ID:        tg.ID,
			Username:  tg.Username,
			FirstName: tg.FirstName,
			LastName:  tg.LastName,
		})
	}
	if err != nil {
		zap.L().Error("failed to get profile", zap.Int64("user_id", userID), zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProfileResponse(*user))
}

// UpdateNickname - сохраняет никнейм из мини-приложения
func (h *Handler) UpdateNickname(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	payload, err := req.Decode[dto.UpdateNicknameRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.serv.UpdateNickname(r.Context(), userID, payload.Nickname)
	if err != nil {
		switch {
		case errors.Is(err, userServ.ErrEmptyNickname), errors.Is(err, userServ.ErrNicknameTooLong):
			resp.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			resp.WriteError(w, http.StatusNotFound, "user not found")
		default:
			zap.L().Error("failed to update nickname", zap.Int64("user_id", userID), zap.Error(err))
			resp.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Leaders - таблица лидеров по балансу
func (h *Handler) Leaders(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	leaders, err := h.serv.Leaders(r.Context(), limit)
	if err != nil {
		zap.L().Error("failed to get leaders", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToLeadersResponse(leaders))
}

// Referrals - список приглашенных пользователем
func (h *Handler) Referrals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	referrals, err := h.serv.Referrals(r.Context(), userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to get referrals", zap.Int64("user_id", userID), zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToReferralsResponse(referrals))
}
