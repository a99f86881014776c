// internal/model/dialog.go
package model

// DialogRequest は POST /dialog のリクエストDTO。
// サーバー側にセッションは無く、文脈は毎回リクエストに載せます。
type DialogRequest struct {
	Passage           string `json:"passage"`
	Question          string `json:"question"`
	AnswerExplanation string `json:"answer_explanation"`
	UserMessage       string `json:"user_message" validate:"required"`
}

type DialogResponse struct {
	Answer string `json:"answer"`
}

// Speaker は対話トランスクリプトの発話者
type Speaker string

const (
	SpeakerUser      Speaker = "user"
	SpeakerAssistant Speaker = "assistant"
)

// DialogEntry はトランスクリプトの1エントリ
type DialogEntry struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// DialogContext はフォローアップ質問に添える設問の文脈
type DialogContext struct {
	Passage           string
	Question          string
	AnswerExplanation string
}
