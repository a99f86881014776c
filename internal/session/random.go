// internal/session/random.go
package session

import (
	"math/rand"

	"sat_prep_keep/internal/model"
)

// QuestionPicker は取得済みの設問リストからランダムに次の1問を選びます。
// ネットワークは使わないローカル操作です。
type QuestionPicker struct {
	rng *rand.Rand
}

// NewQuestionPicker はピッカーを生成します。rng が nil ならグローバルの乱数源を使います。
func NewQuestionPicker(rng *rand.Rand) *QuestionPicker {
	return &QuestionPicker{rng: rng}
}

func (p *QuestionPicker) intn(n int) int {
	if p.rng != nil {
		return p.rng.Intn(n)
	}
	return rand.Intn(n)
}

// NextDistinct は currentID と異なる設問を一様ランダムに返します。
// 候補を先に除外してから引くため再抽選ループは不要です。
// 異なる設問が存在しない場合 (1問のみ等) は現在の設問をそのまま返します。
// 空リストでは nil を返します。
func (p *QuestionPicker) NextDistinct(questions []*model.Question, currentID string) *model.Question {
	if len(questions) == 0 {
		return nil
	}

	candidates := make([]*model.Question, 0, len(questions))
	var current *model.Question
	for _, q := range questions {
		if q.QuestionID == currentID {
			current = q
			continue
		}
		candidates = append(candidates, q)
	}

	if len(candidates) == 0 {
		// 全部が現在の設問と同一ID。ループせずそのまま返す
		return current
	}
	return candidates[p.intn(len(candidates))]
}

// Pick は制約なしで一様ランダムに1問返します。
func (p *QuestionPicker) Pick(questions []*model.Question) *model.Question {
	if len(questions) == 0 {
		return nil
	}
	return questions[p.intn(len(questions))]
}
