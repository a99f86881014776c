// internal/session/controller.go
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"sat_prep_keep/internal/model"
)

// State は復習セッションの状態機械の状態です。
type State int

const (
	// StatePresenting はカードを表示中 (答えは隠れている)
	StatePresenting State = iota
	// StateRevealed は答えを表示済みで、採点待ち
	StateRevealed
	// StateGrading は採点結果を送信中
	StateGrading
	// StateError は送信に失敗した状態。答えは見えたままで、次に進むことはできる
	StateError
)

func (s State) String() string {
	switch s {
	case StatePresenting:
		return "presenting"
	case StateRevealed:
		return "revealed"
	case StateGrading:
		return "grading"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	// ErrNoCurrentCard は表示中のカードが無い状態での操作を示します。
	ErrNoCurrentCard = errors.New("session: no current card")
	// ErrNotRevealed は答えを表示する前の採点操作を示します。
	ErrNotRevealed = errors.New("session: card has not been revealed yet")
	// ErrSubmissionInFlight は同じカードへの採点送信が既に進行中であることを示します。
	ErrSubmissionInFlight = errors.New("session: a grading submission is already in flight")
)

// AttemptSubmitter は採点結果の送信先です。*client.VocabularyClient が満たします。
type AttemptSubmitter interface {
	SubmitAttempt(ctx context.Context, req *model.SubmitAttemptRequest) (*model.SubmitAttemptResponse, error)
}

// Controller は1枚のカードを 表示 → 開示 → 採点 → 次へ と進める状態機械です。
// 採点は同一カードにつき同時に1件しか送信されません (二度押しは無視)。
type Controller struct {
	deck      *Deck
	submitter AttemptSubmitter
	clock     func() time.Time

	mu         sync.Mutex
	state      State
	queue      []uint
	currentIdx int
	revealedAt time.Time
	lastErr    error
}

func NewController(deck *Deck, submitter AttemptSubmitter) *Controller {
	return &Controller{
		deck:      deck,
		submitter: submitter,
		clock:     time.Now,
	}
}

// SetClock はテスト用に時刻源を差し替えます。
func (c *Controller) SetClock(clock func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clock = clock
}

// Start は復習キューを初期化して最初のカードを表示状態にします。
func (c *Controller) Start(cardIDs []uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.queue = append([]uint(nil), cardIDs...)
	c.currentIdx = 0
	c.state = StatePresenting
	c.revealedAt = time.Time{}
	c.lastErr = nil
}

// State は現在の状態を返します。
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// LastError は直近の送信失敗の原因を返します。
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Current は表示中のカードの状態を返します。キューを消化し終えたら false です。
func (c *Controller) Current() (model.CardStatus, bool) {
	c.mu.Lock()
	id, ok := c.currentID()
	c.mu.Unlock()
	if !ok {
		return model.CardStatus{}, false
	}
	return c.deck.Get(id)
}

func (c *Controller) currentID() (uint, bool) {
	if c.currentIdx >= len(c.queue) {
		return 0, false
	}
	return c.queue[c.currentIdx], true
}

// Reveal は答えを表示し、経過時間の計測を開始します。
// 既に開示済みの場合は計測を開始時点に巻き戻します。
func (c *Controller) Reveal() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.currentID(); !ok {
		return ErrNoCurrentCard
	}
	if c.state == StateGrading {
		return ErrSubmissionInFlight
	}

	c.state = StateRevealed
	c.revealedAt = c.clock()
	c.lastErr = nil
	return nil
}

// Grade は採点結果を送信します。経過時間は開示から採点までの実時間です。
// 送信が既に進行中の場合は ErrSubmissionInFlight を返し、再送信しません。
// 成功すると次のカードへ進み、失敗すると Error 状態になります (Advance で先へ進めます)。
func (c *Controller) Grade(ctx context.Context, result string) error {
	c.mu.Lock()

	cardID, ok := c.currentID()
	if !ok {
		c.mu.Unlock()
		return ErrNoCurrentCard
	}
	switch c.state {
	case StateGrading:
		c.mu.Unlock()
		return ErrSubmissionInFlight
	case StateRevealed, StateError:
		// StateError からの再採点は許可する (ユーザーの明示的なリトライ)
	default:
		c.mu.Unlock()
		return ErrNotRevealed
	}

	elapsed := c.clock().Sub(c.revealedAt).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	c.state = StateGrading
	c.mu.Unlock()

	// 楽観的更新は送信より先に適用する
	seq := c.deck.ApplyOutcome(cardID, result)

	resp, err := c.submitter.SubmitAttempt(ctx, &model.SubmitAttemptRequest{
		CardID:             cardID,
		Result:             result,
		TimeElapsedSeconds: elapsed,
	})

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		// 失敗しても進行は妨げない。状態としては区別して見せる
		c.state = StateError
		c.lastErr = err
		return err
	}

	c.deck.Reconcile(cardID, seq, resp)
	c.advanceLocked()
	return nil
}

// Advance は採点せずに次のカードへ進みます (送信失敗後の続行にも使います)。
func (c *Controller) Advance() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.advanceLocked()
}

func (c *Controller) advanceLocked() {
	c.currentIdx++
	c.state = StatePresenting
	c.revealedAt = time.Time{}
	c.lastErr = nil
}

// Remaining は残りのカード枚数を返します (表示中のカードを含む)。
func (c *Controller) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.currentIdx >= len(c.queue) {
		return 0
	}
	return len(c.queue) - c.currentIdx
}
