// internal/session/deck.go
package session

import (
	"sync"

	"sat_prep_keep/internal/model"
)

// Deck はサーバーが持つカード状態のローカルミラーです。
// 提出時は楽観的に更新し、サーバー応答で上書きします。
// カードごとの世代番号 (seq) で遅延した古い応答を破棄します (同一カードは最後の提出が勝つ)。
type Deck struct {
	mu    sync.Mutex
	cards map[uint]*model.CardStatus
	order []uint
	seq   map[uint]uint64
}

func NewDeck() *Deck {
	return &Deck{
		cards: make(map[uint]*model.CardStatus),
		seq:   make(map[uint]uint64),
	}
}

// Replace はサーバーから取得した一覧でミラー全体を置き換えます。
// 楽観的更新はすべて破棄され、以後はこの内容が正です。
func (d *Deck) Replace(cards []*model.CardStatus) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cards = make(map[uint]*model.CardStatus, len(cards))
	d.order = d.order[:0]
	for _, c := range cards {
		copied := *c
		d.cards[c.ID] = &copied
		d.order = append(d.order, c.ID)
	}
}

// Get はカードの現在の状態のコピーを返します。
func (d *Deck) Get(cardID uint) (model.CardStatus, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	c, ok := d.cards[cardID]
	if !ok {
		return model.CardStatus{}, false
	}
	return *c, true
}

// Cards は一覧取得時の順序でカード状態のコピーを返します。
func (d *Deck) Cards() []*model.CardStatus {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]*model.CardStatus, 0, len(d.order))
	for _, id := range d.order {
		if c, ok := d.cards[id]; ok {
			copied := *c
			out = append(out, &copied)
		}
	}
	return out
}

// Due は復習対象のカードのみ返します。
func (d *Deck) Due() []*model.CardStatus {
	all := d.Cards()
	due := make([]*model.CardStatus, 0, len(all))
	for _, c := range all {
		if c.IsDueForReview {
			due = append(due, c)
		}
	}
	return due
}

// ApplyOutcome は提出前の楽観的更新を適用し、その提出の世代番号を返します。
// easy: 完了扱いで復習対象から外れる。again: 失敗回数+1で復習対象のまま。
// ここでの更新は暫定で、Reconcile か次の Replace で正式な状態に置き換わります。
func (d *Deck) ApplyOutcome(cardID uint, result string) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq[cardID]++
	seq := d.seq[cardID]

	c, ok := d.cards[cardID]
	if !ok {
		return seq
	}

	c.Reviewed = true
	if result == model.ResultEasy {
		c.Completed = true
		c.IsDueForReview = false
		c.FailureCount = 0
		c.NextReviewDate = nil
	} else {
		c.FailureCount++
		c.IsDueForReview = true
	}
	return seq
}

// Reconcile はサーバー応答でカード状態を正式なものに置き換えます。
// seq が当該カードの最新の提出でない場合、応答は古いものとして破棄されます。
func (d *Deck) Reconcile(cardID uint, seq uint64, resp *model.SubmitAttemptResponse) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if seq != d.seq[cardID] {
		return false
	}

	c, ok := d.cards[cardID]
	if !ok {
		return false
	}

	c.FailureCount = resp.FailureCount
	c.NextReviewDate = resp.NextReviewDate
	if resp.NextReviewDate == nil && resp.IntervalDays == 0 && resp.FailureCount == 0 {
		// 完了 (easy) の応答
		c.Completed = true
		c.IsDueForReview = false
	} else {
		c.Completed = false
		c.IsDueForReview = resp.NextReviewDate == nil
	}
	return true
}
