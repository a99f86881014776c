// internal/model/user.go
package model

import (
	"time"
)

// User はGoogleサインインで取得したユーザープロフィールを表します。
// sub はGoogleが発行する一意なユーザーIDです。
type User struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	Sub           string    `gorm:"uniqueIndex;not null" json:"-"`
	Name          string    `json:"name"`
	Email         string    `gorm:"uniqueIndex" json:"email"`
	Picture       string    `json:"picture"`
	GivenName     string    `json:"-"`
	FamilyName    string    `json:"-"`
	Birthdate     *string   `json:"-"` // Googleは文字列で返す (YYYY-MM-DD または一部のみ)
	Locale        *string   `json:"-"`
	EmailVerified *string   `json:"-"`
	HD            *string   `gorm:"column:hd" json:"-"` // Google Workspace のホストドメイン
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (User) TableName() string {
	return "users"
}

type ContextKey string

const (
	// UserSubKey は認証済みユーザーの sub をコンテキストに格納するキー
	UserSubKey ContextKey = "userSub"
)

// UserProfile はクライアントに返すユーザー情報 (必要最小限)
type UserProfile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

func (u *User) Profile() UserProfile {
	return UserProfile{
		Name:    u.Name,
		Email:   u.Email,
		Picture: u.Picture,
	}
}
