package auth

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	dto "wheel_backend/internal/api/dto/auth"
	"wheel_backend/internal/service"
	authServ "wheel_backend/internal/service/auth"
	"wheel_backend/pkg/req"
	"wheel_backend/pkg/resp"
)

type HandlerDeps struct {
	Serv service.AuthService
}

type Handler struct {
	serv service.AuthService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

// Login - вход администратора
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	data, err := h.serv.Login(r.Context(), payload.Login, payload.Password)
	if err != nil {
		if errors.Is(err, authServ.ErrInvalidCredentials) {
			resp.WriteError(w, http.StatusUnauthorized, "invalid login or password")
			return
		}
		zap.L().Error("admin login failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		AccessToken:  data.AccessToken,
		RefreshToken: data.RefreshToken,
		SessionID:    data.SessionID,
	})
}

// Refresh - обновление access токена по refresh токену
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.RefreshRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	accessToken, err := h.serv.Refresh(r.Context(), payload.SessionID, payload.RefreshToken)
	if err != nil {
		resp.WriteError(w, http.StatusUnauthorized, "invalid session")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.RefreshResponse{AccessToken: accessToken})
}

// Logout - завершение сессии администратора
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.LogoutRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.serv.Logout(r.Context(), payload.SessionID); err != nil {
		zap.L().Error("admin logout failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
