// internal/webutil/request.go
package webutil

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"sat_prep_keep/internal/model"
)

// DecodeJSONBody はリクエストボディをデコードします。
// 未知のフィールドはエラーにします。
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	err := decoder.Decode(dst)
	if err != nil {
		slog.Debug("Error decoding JSON body", "error", err)
		return model.ErrInvalidInput
	}
	return nil
}
