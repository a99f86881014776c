// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "SatPrepKeep"
	AppVersion = "0.3.1"
)

// デフォルト設定値
const (
	DefaultServerPort       = ":8079"
	DefaultLogLevel         = "info"
	DefaultRecentLimit      = 10
	MaxRecentLimit          = 100
	DefaultJWTExpiryHours   = 72
	DefaultChatModel        = "gemini-1.5-flash-latest"
	DefaultChatTemperature  = 1.0
	DefaultAITimeoutSeconds = 30

	// DefaultUserSub は認証無効時に使う固定ユーザーの sub
	DefaultUserSub = "102668604194363784471"
)
