// internal/client/vocabulary_client.go
package client

import (
	"context"
	"net/http"

	"sat_prep_keep/internal/model"
)

// VocabularyClient は語彙APIへの薄いラッパーです。
type VocabularyClient struct {
	c *Client
}

func NewVocabularyClient(c *Client) *VocabularyClient {
	return &VocabularyClient{c: c}
}

// GetAllCards は全カードの学習状態一覧を取得します。
func (vc *VocabularyClient) GetAllCards(ctx context.Context) ([]*model.CardStatus, error) {
	var cards []*model.CardStatus
	if err := vc.c.do(ctx, http.MethodGet, "/vocabulary/cards", nil, nil, &cards); err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []*model.CardStatus{}
	}
	return cards, nil
}

// GetDueCards は今日復習対象のカードのみを取得します。
func (vc *VocabularyClient) GetDueCards(ctx context.Context) ([]*model.CardStatus, error) {
	var cards []*model.CardStatus
	if err := vc.c.do(ctx, http.MethodGet, "/vocabulary/due-cards", nil, nil, &cards); err != nil {
		return nil, err
	}
	if cards == nil {
		cards = []*model.CardStatus{}
	}
	return cards, nil
}

// GetStats は語彙学習の統計を取得します。
func (vc *VocabularyClient) GetStats(ctx context.Context) (*model.VocabularyStats, error) {
	var stats model.VocabularyStats
	if err := vc.c.do(ctx, http.MethodGet, "/vocabulary/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SubmitAttempt は復習結果を送信します。自動リトライはしません。
func (vc *VocabularyClient) SubmitAttempt(ctx context.Context, req *model.SubmitAttemptRequest) (*model.SubmitAttemptResponse, error) {
	var resp model.SubmitAttemptResponse
	if err := vc.c.do(ctx, http.MethodPost, "/vocabulary/submit-attempt", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
