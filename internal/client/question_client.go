// internal/client/question_client.go
package client

import (
	"context"
	"net/http"
	"net/url"

	"sat_prep_keep/internal/model"
)

// QuestionClient は設問APIへの薄いラッパーです。キャッシュは持ちません。
type QuestionClient struct {
	c *Client
}

func NewQuestionClient(c *Client) *QuestionClient {
	return &QuestionClient{c: c}
}

// filterQuery はフィルタをクエリパラメータに変換します。
// "Any" と空文字は送信しません (サーバーには具体値のみ渡る)。
func filterQuery(filters model.FilterOptions) url.Values {
	q := url.Values{}
	if d := filters.ConcreteDomain(); d != "" {
		q.Set("domain", d)
	}
	if s := filters.ConcreteSkill(); s != "" {
		q.Set("skill", s)
	}
	if d := filters.ConcreteDifficulty(); d != "" {
		q.Set("difficulty", d)
	}
	return q
}

// FetchQuestions はフィルタ条件に合致する設問一覧を取得します。
func (qc *QuestionClient) FetchQuestions(ctx context.Context, filters model.FilterOptions) (*model.QuestionsResponse, error) {
	var resp model.QuestionsResponse
	if err := qc.c.do(ctx, http.MethodGet, "/questions", filterQuery(filters), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Questions == nil {
		resp.Questions = []*model.Question{}
	}
	return &resp, nil
}

// FetchRandom はフィルタ条件に合致する設問を1問取得します。
// 合致する設問が無い場合は404の *APIError を返します。
func (qc *QuestionClient) FetchRandom(ctx context.Context, filters model.FilterOptions) (*model.Question, error) {
	var resp model.RandomQuestionResponse
	if err := qc.c.do(ctx, http.MethodGet, "/questions/random", filterQuery(filters), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Question, nil
}

// FetchFilterOptions はフィルタの選択肢一覧を取得します。
func (qc *QuestionClient) FetchFilterOptions(ctx context.Context) (*model.FilterOptionsResponse, error) {
	var resp model.FilterOptionsResponse
	if err := qc.c.do(ctx, http.MethodGet, "/questions/filter-options", nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateQuestion は設問を新規登録します (管理用途)。
func (qc *QuestionClient) CreateQuestion(ctx context.Context, req *model.CreateQuestionRequest) (*model.Question, error) {
	var created model.Question
	if err := qc.c.do(ctx, http.MethodPost, "/questions", nil, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
