// cmd/practice/main.go
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"sat_prep_keep/internal/client"
	"sat_prep_keep/internal/config"
	"sat_prep_keep/internal/model"
	"sat_prep_keep/internal/session"
)

// practice はターミナルから復習・演習するためのクライアントです。
// サーバーと同じ設定ファイルの client セクションを使います。
func main() {
	mode := flag.String("mode", "vocab", "practice mode: vocab | questions | stats")
	domain := flag.String("domain", model.FilterAny, "question domain filter")
	skill := flag.String("skill", model.FilterAny, "question skill filter")
	difficulty := flag.String("difficulty", model.FilterAny, "question difficulty filter")
	configPath := flag.String("config", "./configs", "config directory")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if err := config.LoadConfig(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()

	apiClient := client.New(config.Cfg.Client.BaseURL, client.WithLogger(logger))
	store := client.NewCredentialStore(config.Cfg.Client.CredentialFile)
	authClient := client.NewAuthClient(apiClient, store)

	// 保存済みクレデンシャルがあれば再ログインする。
	// 無い場合もサーバー側の認証が無効なら固定ユーザーとして操作できる
	if resp, err := authClient.Resume(ctx); err == nil {
		fmt.Printf("Signed in as %s <%s>\n", resp.User.Name, resp.User.Email)
	} else if !errors.Is(err, client.ErrNoCredential) {
		fmt.Fprintf(os.Stderr, "sign-in failed, continuing anonymously: %v\n", err)
	}

	reader := bufio.NewReader(os.Stdin)

	var err error
	switch *mode {
	case "vocab":
		err = runVocabReview(ctx, apiClient, reader)
	case "questions":
		err = runQuestionDrill(ctx, apiClient, reader, *domain, *skill, *difficulty)
	case "stats":
		err = printStats(ctx, apiClient)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// runVocabReview は今日の復習対象カードを1枚ずつ消化します。
func runVocabReview(ctx context.Context, apiClient *client.Client, reader *bufio.Reader) error {
	vocabClient := client.NewVocabularyClient(apiClient)

	dueCards, err := vocabClient.GetDueCards(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch due cards: %w", err)
	}
	if len(dueCards) == 0 {
		fmt.Println("No cards due for review today. Nice work!")
		return nil
	}

	deck := session.NewDeck()
	deck.Replace(dueCards)

	ids := make([]uint, len(dueCards))
	for i, c := range dueCards {
		ids[i] = c.ID
	}

	controller := session.NewController(deck, vocabClient)
	controller.Start(ids)

	fmt.Printf("%d cards due for review.\n\n", len(dueCards))

	for {
		card, ok := controller.Current()
		if !ok {
			break
		}

		fmt.Printf("[%d left] %s\n", controller.Remaining(), card.Word)
		if card.FailureCount > 0 {
			fmt.Printf("  (review attempt #%d)\n", card.FailureCount+1)
		}
		fmt.Print("  Press Enter to reveal the definition... ")
		if _, err := reader.ReadString('\n'); err != nil {
			return err
		}
		if err := controller.Reveal(); err != nil {
			return err
		}

		fmt.Printf("  Definition: %s\n", card.Definition)
		if card.Example != nil && *card.Example != "" {
			fmt.Printf("  Example:    %s\n", *card.Example)
		}

		outcome, quit, err := promptOutcome(reader)
		if err != nil {
			return err
		}
		if quit {
			fmt.Println("Session ended.")
			return nil
		}
		if outcome == "" {
			controller.Advance()
			fmt.Println()
			continue
		}

		if err := controller.Grade(ctx, outcome); err != nil {
			// 送信失敗は致命的ではない。記録されなかった旨を伝えて先へ進める
			fmt.Printf("  Submission failed (%v). This review may not have been recorded.\n", err)
			controller.Advance()
		} else if updated, ok := deck.Get(card.ID); ok {
			if updated.Completed {
				fmt.Println("  Marked as completed.")
			} else if updated.NextReviewDate != nil {
				fmt.Printf("  Next review on %s (failure count %d).\n", *updated.NextReviewDate, updated.FailureCount)
			}
		}
		fmt.Println()
	}

	fmt.Println("All due cards reviewed.")
	return nil
}

func promptOutcome(reader *bufio.Reader) (outcome string, quit bool, err error) {
	for {
		fmt.Print("  [a]gain / [e]asy / [s]kip / [q]uit: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "a", "again":
			return model.ResultAgain, false, nil
		case "e", "easy":
			return model.ResultEasy, false, nil
		case "s", "skip":
			return "", false, nil
		case "q", "quit":
			return "", true, nil
		}
	}
}

// runQuestionDrill はフィルタ条件で設問を取得し、ランダムに出題し続けます。
func runQuestionDrill(ctx context.Context, apiClient *client.Client, reader *bufio.Reader, domain, skill, difficulty string) error {
	questionClient := client.NewQuestionClient(apiClient)
	progressClient := client.NewProgressClient(apiClient)
	dialogClient := client.NewDialogClient(apiClient)

	filters := session.NewFilterState()
	if domain != model.FilterAny {
		if err := filters.SetDomain(domain); err != nil {
			return err
		}
	}
	if skill != model.FilterAny {
		if err := filters.SetSkill(skill); err != nil {
			return err
		}
	}
	if difficulty != model.FilterAny {
		if err := filters.SetDifficulty(difficulty); err != nil {
			return err
		}
	}

	resp, err := questionClient.FetchQuestions(ctx, filters.Options())
	if err != nil {
		return fmt.Errorf("failed to fetch questions: %w", err)
	}
	if len(resp.Questions) == 0 {
		fmt.Println("No questions match the selected filters.")
		return nil
	}
	fmt.Printf("%d questions loaded.\n\n", resp.Total)

	picker := session.NewQuestionPicker(nil)
	var currentID string

	for {
		question := picker.NextDistinct(resp.Questions, currentID)
		if question == nil {
			return nil
		}
		currentID = question.QuestionID

		if question.Passage != nil && *question.Passage != "" {
			fmt.Println(*question.Passage)
			fmt.Println()
		}
		fmt.Println(question.Question)
		fmt.Printf("  A) %s\n  B) %s\n  C) %s\n  D) %s\n", question.ChoiceA, question.ChoiceB, question.ChoiceC, question.ChoiceD)
		askedAt := time.Now()

		choice, quit, err := promptChoice(reader)
		if err != nil {
			return err
		}
		if quit {
			fmt.Println("Session ended.")
			return nil
		}

		isCorrect := choice == question.CorrectChoice
		if isCorrect {
			fmt.Println("Correct!")
		} else {
			fmt.Printf("Incorrect. The answer is %s.\n", question.CorrectChoice)
		}
		if rationale := rationaleFor(question, question.CorrectChoice); rationale != "" {
			fmt.Printf("Explanation: %s\n", rationale)
		}

		if _, err := progressClient.SubmitAnswer(ctx, &model.SubmitAnswerRequest{
			QuestionID:         question.QuestionID,
			SelectedChoice:     choice,
			IsCorrect:          &isCorrect,
			TimeElapsedSeconds: time.Since(askedAt).Seconds(),
		}); err != nil {
			fmt.Printf("Submission failed (%v). This answer may not have been recorded.\n", err)
		}

		if err := maybeAskTutor(ctx, dialogClient, reader, question); err != nil {
			return err
		}
		fmt.Println()
	}
}

func promptChoice(reader *bufio.Reader) (choice string, quit bool, err error) {
	for {
		fmt.Print("Your answer [A-D, q to quit]: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return "", false, err
		}
		answer := strings.ToUpper(strings.TrimSpace(line))
		switch answer {
		case "A", "B", "C", "D":
			return answer, false, nil
		case "Q":
			return "", true, nil
		}
	}
}

func rationaleFor(q *model.Question, choice string) string {
	var r *string
	switch choice {
	case "A":
		r = q.RationaleA
	case "B":
		r = q.RationaleB
	case "C":
		r = q.RationaleC
	case "D":
		r = q.RationaleD
	}
	if r == nil {
		return ""
	}
	return *r
}

// maybeAskTutor はAIチューターへのフォローアップ質問を受け付けます。
func maybeAskTutor(ctx context.Context, dialogClient *client.DialogClient, reader *bufio.Reader, q *model.Question) error {
	fmt.Print("Ask the tutor a follow-up question (Enter to skip): ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return err
	}
	message := strings.TrimSpace(line)
	if message == "" {
		return nil
	}

	passage := ""
	if q.Passage != nil {
		passage = *q.Passage
	}
	dialogCtx := model.DialogContext{
		Passage:           passage,
		Question:          q.Question,
		AnswerExplanation: rationaleFor(q, q.CorrectChoice),
	}

	answer, err := dialogClient.Ask(ctx, dialogCtx, message)
	if err != nil {
		fmt.Printf("Tutor is unavailable right now (%v).\n", err)
		return nil
	}
	fmt.Printf("Tutor: %s\n", answer)
	return nil
}

// printStats は進捗と語彙学習の統計をまとめて表示します。
func printStats(ctx context.Context, apiClient *client.Client) error {
	progressClient := client.NewProgressClient(apiClient)
	vocabClient := client.NewVocabularyClient(apiClient)

	stats, err := progressClient.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch progress stats: %w", err)
	}
	fmt.Printf("Questions answered: %d / %d (%.1f%%)\n", stats.QuestionsAnswered, stats.TotalQuestions, stats.CompletionRate)
	fmt.Printf("Accuracy: %.1f%%\n", stats.Accuracy)
	for _, d := range stats.DomainPerformance {
		fmt.Printf("  %-30s %d/%d (%.1f%%)\n", d.Domain, d.Correct, d.Attempted, d.Accuracy)
	}

	vocabStats, err := vocabClient.GetStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch vocabulary stats: %w", err)
	}
	fmt.Printf("Vocabulary: %d/%d completed (%.1f%%), %d due today\n",
		vocabStats.CompletedCards, vocabStats.TotalCards, vocabStats.CompletionPercentage, vocabStats.DueToday)

	recent, err := progressClient.GetRecentAttempts(ctx, config.Cfg.App.RecentLimit)
	if err != nil {
		return fmt.Errorf("failed to fetch recent attempts: %w", err)
	}
	if len(recent) > 0 {
		fmt.Println("Recent attempts:")
		for _, a := range recent {
			mark := "x"
			if a.IsCorrect {
				mark = "o"
			}
			fmt.Printf("  [%s] %s (%s)\n", mark, a.QuestionID, a.AttemptedAt)
		}
	}
	return nil
}
