package resp

import (
	"encoding/json"
	"net/http"
)

// WriteJSONResponse - сериализует data в JSON и пишет в ответ с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError - пишет ошибку в едином JSON формате
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSONResponse(w, status, map[string]string{"error": message})
}
