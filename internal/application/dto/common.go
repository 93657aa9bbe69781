package dto

// ErrorResponse cuerpo de error en salida JSON.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
