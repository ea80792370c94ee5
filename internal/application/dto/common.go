package dto

// Paginación por defecto: skip=0, limit=10, tope 100.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// NormalizarPagina aplica los valores por defecto de skip/limit.
func NormalizarPagina(limit, skip int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if skip < 0 {
		skip = 0
	}
	return limit, skip
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse confirmación simple de una operación.
type MessageResponse struct {
	Message string `json:"message"`
}
