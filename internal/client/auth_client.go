// internal/client/auth_client.go
package client

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"

	"sat_prep_keep/internal/model"
)

// AuthClient はログインAPIへのラッパーです。
// ログイン成功時は共有クライアントにアクセストークンを設定します。
type AuthClient struct {
	c     *Client
	store *CredentialStore
}

func NewAuthClient(c *Client, store *CredentialStore) *AuthClient {
	return &AuthClient{c: c, store: store}
}

// LoginWithGoogle はGoogleのIDトークンでログインします。
// 成功すると以降のAPI呼び出しにアクセストークンが付与され、
// クレデンシャルは次回起動時の再ログイン用に保存されます。
func (ac *AuthClient) LoginWithGoogle(ctx context.Context, credential string) (*model.GoogleLoginResponse, error) {
	req := &model.GoogleLoginRequest{Credential: credential}

	var resp model.GoogleLoginResponse
	if err := ac.c.do(ctx, http.MethodPost, "/auth/google", nil, req, &resp); err != nil {
		return nil, err
	}

	ac.c.SetAccessToken(resp.AccessToken)

	if ac.store != nil {
		if err := ac.store.Save(credential); err != nil {
			// 保存失敗は致命的ではない。次回起動時に再ログインが必要になるだけ
			ac.c.logger.Warn("Failed to persist credential", "error", err)
		}
	}
	return &resp, nil
}

// Resume は保存済みクレデンシャルで再ログインを試みます。
// 保存されていなければ ErrNoCredential を返します。
func (ac *AuthClient) Resume(ctx context.Context) (*model.GoogleLoginResponse, error) {
	if ac.store == nil {
		return nil, ErrNoCredential
	}
	credential, err := ac.store.Load()
	if err != nil {
		return nil, err
	}
	return ac.LoginWithGoogle(ctx, credential)
}

// Logout はトークンと保存済みクレデンシャルを破棄します。
func (ac *AuthClient) Logout() error {
	ac.c.SetAccessToken("")
	if ac.store != nil {
		return ac.store.Clear()
	}
	return nil
}

// ErrNoCredential は保存済みクレデンシャルが存在しないことを示します。
var ErrNoCredential = errors.New("auth: no stored credential")

// CredentialStore はクレデンシャルをファイルに1つだけ保存します。
// ブラウザのローカルストレージに相当する、セッションをまたぐ唯一の永続状態です。
type CredentialStore struct {
	path string
}

func NewCredentialStore(path string) *CredentialStore {
	return &CredentialStore{path: path}
}

func (s *CredentialStore) Save(credential string) error {
	return os.WriteFile(s.path, []byte(credential), 0o600)
}

func (s *CredentialStore) Load() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoCredential
		}
		return "", err
	}
	credential := strings.TrimSpace(string(data))
	if credential == "" {
		return "", ErrNoCredential
	}
	return credential, nil
}

func (s *CredentialStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
