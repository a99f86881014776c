// internal/handlers/main_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"sat_prep_keep/internal/config"
	"sat_prep_keep/internal/middleware"
)

const testUserSub = "102668604194363784471"

// testLogger はテスト中の出力を抑制したロガー
var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newAuthedRouter は認証無効モード (固定ユーザー) のミドルウェアを噛ませたルーターを返します。
func newAuthedRouter() chi.Router {
	var cfg config.Config
	cfg.Auth.Enabled = false
	cfg.App.DefaultUserSub = testUserSub

	r := chi.NewRouter()
	r.Use(middleware.UserAuthMiddleware(&cfg))
	return r
}

// createRequest はJSONボディ付きのテストリクエストを作ります。body が nil ならボディなし。
func createRequest(t *testing.T, method, path string, body interface{}) *http.Request {
	t.Helper()

	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		buf = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}
