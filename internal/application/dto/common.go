package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WarningDTO advertencia no fatal adjunta a una respuesta exitosa
// (ej.: el item de un registro borrado ya no existe).
type WarningDTO struct {
	Code    string `json:"code"`
	ItemID  string `json:"item_id,omitempty"`
	Message string `json:"message"`
}
