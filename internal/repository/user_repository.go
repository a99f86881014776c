//go:generate mockery --name UserRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"sat_prep_keep/internal/middleware"
	"sat_prep_keep/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	FindBySub(ctx context.Context, db *gorm.DB, sub string) (*model.User, error)
	Upsert(ctx context.Context, db *gorm.DB, user *model.User) error
}

type gormUserRepository struct{}

func NewGormUserRepository() UserRepository {
	return &gormUserRepository{}
}

func (r *gormUserRepository) FindBySub(ctx context.Context, db *gorm.DB, sub string) (*model.User, error) {
	var user model.User
	result := db.WithContext(ctx).Where("sub = ?", sub).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormUserRepository.FindBySub: %w", result.Error)
	}
	return &user, nil
}

func (r *gormUserRepository) Upsert(ctx context.Context, db *gorm.DB, user *model.User) error {
	logger := middleware.GetLogger(ctx)

	// sub をキーにプロフィールを洗い替えする (Googleの最新情報を常に反映)
	result := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "sub"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "email", "picture", "given_name", "family_name",
			"birthdate", "locale", "email_verified", "hd", "updated_at",
		}),
	}).Create(user)
	if result.Error != nil {
		logger.Error("Error upserting user in DB", "error", result.Error, "sub", user.Sub)
		return fmt.Errorf("gormUserRepository.Upsert: %w", result.Error)
	}
	return nil
}
