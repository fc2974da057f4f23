package helpers

import (
	"encoding/json"
	"net/http"
	"time"
)

// TimestampLayout formats ErrorResponse.Timestamp as dd/MM/yyyy HH:mm:ss.
const TimestampLayout = "02/01/2006 15:04:05"

// Error labels used in ErrorResponse.Error.
const (
	LabelNotFound         = "Evento no encontrado"
	LabelBadRequest       = "Solicitud incorrecta"
	LabelRouteNotFound    = "Recurso no encontrado"
	LabelMethodNotAllowed = "Método HTTP no permitido"
	LabelUnsupportedMedia = "Tipo de contenido no soportado"
	LabelUnavailable      = "Servicio no disponible"
	LabelInternalError    = "Error interno del servidor"
)

// ErrorResponse is the envelope written for every handled error.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

// NewErrorResponse builds the envelope for a request. Path is reported as "uri=<path>".
func NewErrorResponse(now time.Time, r *http.Request, statusCode int, label, message string) ErrorResponse {
	return ErrorResponse{
		Timestamp: now.Format(TimestampLayout),
		Status:    statusCode,
		Error:     label,
		Message:   message,
		Path:      "uri=" + r.URL.Path,
	}
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes data as the body.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
