// internal/ai/provider.go
package ai

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sashabaranov/go-openai"
)

// Config はLLMプロバイダの接続設定です。
// OpenAI互換エンドポイントであれば BaseURL の差し替えで利用できます。
type Config struct {
	BaseURL     string
	APIKey      string
	ChatModel   string
	Temperature float32
	MaxRetries  int
	Timeout     time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		BaseURL:     "https://api.openai.com/v1",
		APIKey:      "",
		ChatModel:   "gpt-4o-mini",
		Temperature: 1.0,
		MaxRetries:  3,
		Timeout:     30 * time.Second,
	}
}

// Message は1つのチャットメッセージ
type Message struct {
	Role    string
	Content string
}

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Provider はチャット補完を提供します。
type Provider struct {
	client *openai.Client
	config *Config
}

func NewProvider(cfg *Config) *Provider {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.ChatModel == "" {
		cfg.ChatModel = "gpt-4o-mini"
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	client := openai.NewClientWithConfig(clientConfig)

	return &Provider{
		client: client,
		config: cfg,
	}
}

// Chat はチャット補完を実行し、先頭の応答テキストを返します。
func (p *Provider) Chat(ctx context.Context, messages []Message) (string, error) {
	llmMessages := make([]openai.ChatCompletionMessage, len(messages))
	for i, msg := range messages {
		llmMessages[i] = openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
	}

	req := openai.ChatCompletionRequest{
		Model:       p.config.ChatModel,
		Messages:    llmMessages,
		Temperature: p.config.Temperature,
	}

	var result string
	err := p.doWithRetry(ctx, func(callCtx context.Context) error {
		resp, err := p.client.CreateChatCompletion(callCtx, req)
		if err != nil {
			return err
		}
		if len(resp.Choices) == 0 {
			return fmt.Errorf("empty chat completion response")
		}
		result = resp.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate chat completion: %w", err)
	}
	return result, nil
}

// doWithRetry は指数バックオフ付きで fn をリトライします。
func (p *Provider) doWithRetry(ctx context.Context, fn func(context.Context) error) error {
	var lastErr error
	for attempt := 0; attempt < p.config.MaxRetries; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, p.config.Timeout)
		err := fn(callCtx)
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt < p.config.MaxRetries-1 {
			backoff := time.Duration(math.Pow(2, float64(attempt))) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return lastErr
}
