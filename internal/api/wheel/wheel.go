package wheel

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"wheel_backend/internal/converter"
	"wheel_backend/internal/middleware"
	"wheel_backend/internal/service"
	wheelServ "wheel_backend/internal/service/wheel"
	"wheel_backend/pkg/resp"
)

const defaultHistoryLimit = 10

type HandlerDeps struct {
	Serv service.WheelService
}

type Handler struct {
	serv service.WheelService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Spin - прокрут колеса для авторизованного пользователя.
// Отсутствие билетов - не ошибка: отдаем success=false с таймером
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	result, err := h.serv.Spin(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, wheelServ.ErrNoTickets):
			info, terr := h.serv.Timer(r.Context(), userID)
			if terr != nil {
				zap.L().Error("failed to get spin timer", zap.Int64("user_id", userID), zap.Error(terr))
				resp.WriteError(w, http.StatusInternalServerError, "internal server error")
				return
			}
			resp.WriteJSONResponse(w, http.StatusOK, converter.ToNoTicketsResponse(*info))
		case errors.Is(err, wheelServ.ErrUserNotFound):
			resp.WriteError(w, http.StatusNotFound, "user not found")
		default:
			// Выигрыш не записан - показывать его нельзя, просим повторить позже
			zap.L().Error("spin failed", zap.Int64("user_id", userID), zap.Error(err))
			resp.WriteError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

// Timer - билеты и время до бесплатного прокрута
func (h *Handler) Timer(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	info, err := h.serv.Timer(r.Context(), userID)
	if err != nil {
		if errors.Is(err, wheelServ.ErrUserNotFound) {
			resp.WriteError(w, http.StatusNotFound, "user not found")
			return
		}
		zap.L().Error("failed to get spin timer", zap.Int64("user_id", userID), zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToTimerResponse(*info))
}

// Probabilities - текущие вероятности секторов и состояние дневного лимита
func (h *Handler) Probabilities(w http.ResponseWriter, r *http.Request) {
	info, err := h.serv.Probabilities(r.Context())
	if err != nil {
		zap.L().Error("failed to get probabilities", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProbabilitiesResponse(*info))
}

// History - последние прокруты пользователя
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		resp.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit := defaultHistoryLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 || parsed > 100 {
			resp.WriteError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	games, err := h.serv.History(r.Context(), userID, limit)
	if err != nil {
		zap.L().Error("failed to get spin history", zap.Int64("user_id", userID), zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToHistoryResponse(games))
}
