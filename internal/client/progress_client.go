// internal/client/progress_client.go
package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"sat_prep_keep/internal/model"
)

// ProgressClient は解答記録・進捗APIへの薄いラッパーです。
type ProgressClient struct {
	c *Client
}

func NewProgressClient(c *Client) *ProgressClient {
	return &ProgressClient{c: c}
}

// SubmitAnswer は設問への解答を記録します。同じ設問への再解答は記録を置き換えます。
func (pc *ProgressClient) SubmitAnswer(ctx context.Context, req *model.SubmitAnswerRequest) (*model.SubmitAnswerResponse, error) {
	var resp model.SubmitAnswerResponse
	if err := pc.c.do(ctx, http.MethodPost, "/api/user-progress/submit-answer", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetStats は進捗ダッシュボード用の統計を取得します。
func (pc *ProgressClient) GetStats(ctx context.Context) (*model.UserStats, error) {
	var stats model.UserStats
	if err := pc.c.do(ctx, http.MethodGet, "/api/user-progress/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetRecentAttempts は直近の解答履歴を取得します。limit <= 0 ならサーバーの既定値に任せます。
func (pc *ProgressClient) GetRecentAttempts(ctx context.Context, limit int) ([]*model.RecentAttempt, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var attempts []*model.RecentAttempt
	if err := pc.c.do(ctx, http.MethodGet, "/api/user-progress/recent-attempts", q, nil, &attempts); err != nil {
		return nil, err
	}
	if attempts == nil {
		attempts = []*model.RecentAttempt{}
	}
	return attempts, nil
}
