// internal/client/client_test.go
package client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"sat_prep_keep/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientTestLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, WithHTTPClient(srv.Client()), WithLogger(clientTestLogger)), srv
}

func TestClient_Do(t *testing.T) {
	ctx := context.Background()

	t.Run("トークン設定後はBearerヘッダーを付与する", func(t *testing.T) {
		var gotAuth string
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		require.NoError(t, c.do(ctx, http.MethodGet, "/ping", nil, nil, nil))
		assert.Empty(t, gotAuth)

		c.SetAccessToken("signed.jwt.token")
		require.NoError(t, c.do(ctx, http.MethodGet, "/ping", nil, nil, nil))
		assert.Equal(t, "Bearer signed.jwt.token", gotAuth)
	})

	t.Run("非2xxはAPIErrorとしてcode/messageを保持する", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(model.APIErrorResponse{
				Error: model.ErrorDetail{Code: "NOT_FOUND", Message: "No questions found matching the criteria."},
			})
		}))
		defer srv.Close()

		err := c.do(ctx, http.MethodGet, "/questions/random", nil, nil, nil)
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "NOT_FOUND", apiErr.Code)
		assert.Equal(t, "No questions found matching the criteria.", apiErr.Message)
		assert.True(t, IsNotFound(err))
	})

	t.Run("エラーボディがJSONでなくてもステータスは返る", func(t *testing.T) {
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		}))
		defer srv.Close()

		err := c.do(ctx, http.MethodGet, "/health", nil, nil, nil)
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Empty(t, apiErr.Code)
		assert.False(t, IsNotFound(err))
	})

	t.Run("ボディ付きリクエストはJSONで送信される", func(t *testing.T) {
		var gotContentType string
		var gotBody map[string]interface{}
		c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			json.NewDecoder(r.Body).Decode(&gotBody)
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		require.NoError(t, c.do(ctx, http.MethodPost, "/echo", nil, map[string]string{"key": "value"}, nil))
		assert.Equal(t, "application/json", gotContentType)
		assert.Equal(t, "value", gotBody["key"])
	})
}
