package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dalanakids/shop-api/internal/model"
)

// ResetTokenRepo persists reset-password tokens.
type ResetTokenRepo struct{ DB *gorm.DB }

func NewResetTokenRepo(db *gorm.DB) *ResetTokenRepo { return &ResetTokenRepo{DB: db} }

// Create inserts a new reset token row.
func (r *ResetTokenRepo) Create(ctx context.Context, t *model.ResetPasswordToken) error {
	return translate(r.DB.WithContext(ctx).Create(t).Error)
}

// GetByToken fetches a reset token by its opaque value.
func (r *ResetTokenRepo) GetByToken(ctx context.Context, token string) (model.ResetPasswordToken, error) {
	var t model.ResetPasswordToken
	err := r.DB.WithContext(ctx).Where("token = ?", token).First(&t).Error
	return t, translate(err)
}

// Consume marks a token as used. The update is conditional on
// consumed_at still being NULL so only one of two concurrent resets
// can win; the loser gets ErrNotFound.
func (r *ResetTokenRepo) Consume(ctx context.Context, token string, at time.Time) error {
	res := r.DB.WithContext(ctx).Model(&model.ResetPasswordToken{}).
		Where("token = ? AND consumed_at IS NULL", token).
		Update("consumed_at", at)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteExpired removes tokens whose window has passed. Called
// opportunistically; the consumed flag already closes the replay hole.
func (r *ResetTokenRepo) DeleteExpired(ctx context.Context, now time.Time) error {
	return translate(r.DB.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.ResetPasswordToken{}).Error)
}
