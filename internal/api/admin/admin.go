package admin

import (
	"net/http"

	"go.uber.org/zap"

	dto "wheel_backend/internal/api/dto/wheel"
	"wheel_backend/internal/converter"
	"wheel_backend/internal/service"
	"wheel_backend/pkg/req"
	"wheel_backend/pkg/resp"
)

type HandlerDeps struct {
	WheelServ service.WheelService
}

type Handler struct {
	wheelServ service.WheelService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{wheelServ: deps.WheelServ}
}

// Stats - состояние дневного лимита и текущие вероятности для админ-панели
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	info, err := h.wheelServ.Probabilities(r.Context())
	if err != nil {
		zap.L().Error("failed to get admin stats", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToProbabilitiesResponse(*info))
}

// UpdateConfig - применяет новую конфигурацию колеса.
// Файл перезаписывается, наблюдатель конфигурации подхватывает изменения
func (h *Handler) UpdateConfig(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.UpdateConfigRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	cfg, err := converter.ToWheelConfig(payload)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.wheelServ.UpdateConfig(r.Context(), cfg); err != nil {
		zap.L().Error("failed to update wheel config", zap.Error(err))
		resp.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
