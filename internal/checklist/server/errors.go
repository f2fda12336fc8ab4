package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/shiroemons/go-checklist/pkg/checklist"
)

// ErrorResponse はエラー時のレスポンスです
type ErrorResponse struct {
	Error string `json:"error"`
	Row   int    `json:"row,omitempty"`
}

// codecErrors は入力の内容が原因で失敗したことを表すエラー
var codecErrors = []error{
	checklist.ErrInvalidFormat,
	checklist.ErrInvalidHeader,
	checklist.ErrInvalidEncoding,
	checklist.ErrInvalidEventName,
	checklist.ErrTooOld,
	checklist.ErrTooFewColumns,
	checklist.ErrMissingRequiredField,
	checklist.ErrInvalidColorFormat,
}

// statusFor はエラーに対応するステータスコードを返します
func statusFor(err error) int {
	if errors.Is(err, checklist.ErrUnsupportedEncoding) {
		return http.StatusBadRequest
	}
	for _, target := range codecErrors {
		if errors.Is(err, target) {
			return http.StatusUnprocessableEntity
		}
	}
	return http.StatusInternalServerError
}

// respondError はエラーをログに出力し、JSONで返します
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	resp := ErrorResponse{Error: err.Error()}
	var rowErr *checklist.RowError
	if errors.As(err, &rowErr) {
		resp.Row = rowErr.Row
	}

	logger := s.loggerFor(r)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", zap.Int("status", status), zap.Error(err))
		resp.Error = http.StatusText(status)
	} else {
		logger.Info("invalid checklist", zap.Int("status", status), zap.Error(err))
	}

	writeJSON(w, status, resp)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
