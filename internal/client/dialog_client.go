// internal/client/dialog_client.go
package client

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"sat_prep_keep/internal/model"
)

// ErrAskInFlight は前の質問への応答待ちの間に次の質問が来たことを示します。
var ErrAskInFlight = errors.New("dialog: another ask is already in flight")

// errorReplyText は送信失敗時にトランスクリプトへ合成するアシスタント発話
const errorReplyText = "Sorry, something went wrong while contacting the tutor. Your question may not have been recorded."

// DialogClient はAIチューターとの対話クライアントです。
// トランスクリプトをローカルに保持し、発話は呼び出し順に追記されます。
// 同時に送信できる質問は1つだけで、応答待ちの間の Ask は ErrAskInFlight になります。
// これによりユーザー発話と応答のペアが後続の応答と交錯しないことを保証します。
type DialogClient struct {
	c *Client

	mu         sync.Mutex
	inFlight   bool
	transcript []model.DialogEntry
}

func NewDialogClient(c *Client) *DialogClient {
	return &DialogClient{c: c}
}

// Ask はフォローアップ質問を送信し、アシスタントの応答を返します。
// 応答 (失敗時は合成エラー発話) はトランスクリプトに追記されます。失敗してもリトライしません。
func (dc *DialogClient) Ask(ctx context.Context, dialogCtx model.DialogContext, userMessage string) (string, error) {
	dc.mu.Lock()
	if dc.inFlight {
		dc.mu.Unlock()
		return "", ErrAskInFlight
	}
	dc.inFlight = true
	dc.transcript = append(dc.transcript, model.DialogEntry{Speaker: model.SpeakerUser, Text: userMessage})
	dc.mu.Unlock()

	req := &model.DialogRequest{
		Passage:           dialogCtx.Passage,
		Question:          dialogCtx.Question,
		AnswerExplanation: dialogCtx.AnswerExplanation,
		UserMessage:       userMessage,
	}

	var resp model.DialogResponse
	err := dc.c.do(ctx, http.MethodPost, "/dialog", nil, req, &resp)

	dc.mu.Lock()
	defer dc.mu.Unlock()
	dc.inFlight = false

	if err != nil {
		// 失敗はトランスクリプト上では合成エラー発話として残す
		dc.transcript = append(dc.transcript, model.DialogEntry{Speaker: model.SpeakerAssistant, Text: errorReplyText})
		return "", err
	}

	dc.transcript = append(dc.transcript, model.DialogEntry{Speaker: model.SpeakerAssistant, Text: resp.Answer})
	return resp.Answer, nil
}

// Transcript は現在のトランスクリプトのコピーを返します。
func (dc *DialogClient) Transcript() []model.DialogEntry {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	out := make([]model.DialogEntry, len(dc.transcript))
	copy(out, dc.transcript)
	return out
}

// Reset は対話セッションを破棄します。トランスクリプトは永続化されません。
func (dc *DialogClient) Reset() {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	dc.transcript = nil
}
