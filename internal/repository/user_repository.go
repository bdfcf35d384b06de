package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/dalanakids/shop-api/internal/model"
)

// UserRepo persists user records.
type UserRepo struct{ DB *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a new user row. Emails are stored lowercased so the
// unique index is effectively case-insensitive.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return translate(r.DB.WithContext(ctx).Create(u).Error)
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u model.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error
	return u, translate(err)
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	var u model.User
	err := r.DB.WithContext(ctx).Where("id = ?", id).First(&u).Error
	return u, translate(err)
}

// GetByConfirmationCode fetches the pending registration matching the
// given 4-digit code. Consumed codes are stored as 0 and never match
// because the valid range starts at 1000.
func (r *UserRepo) GetByConfirmationCode(ctx context.Context, code int) (model.User, error) {
	var u model.User
	err := r.DB.WithContext(ctx).
		Where("confirmation_code = ? AND confirmation_code <> 0", code).
		First(&u).Error
	return u, translate(err)
}

// Confirm upgrades an unconfirmed user to the user role and clears the
// confirmation code in one update.
func (r *UserRepo) Confirm(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		Updates(map[string]any{"role": model.RoleUser, "confirmation_code": 0})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementResetAttempts bumps the forgot-password counter for a user.
func (r *UserRepo) IncrementResetAttempts(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		UpdateColumn("attempts_to_change_password", gorm.Expr("attempts_to_change_password + 1"))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePasswordHash replaces the stored hash and clears the reset
// attempt counter.
func (r *UserRepo) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	res := r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).
		Updates(map[string]any{"password_hash": hash, "attempts_to_change_password": 0})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// List returns all users ordered by creation time.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.DB.WithContext(ctx).Order("created_at").Find(&users).Error
	return users, translate(err)
}

// Update applies a partial field map to a user row.
func (r *UserRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	res := r.DB.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a user row.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
