package repository

import (
	"context"
	"time"

	"go-shop-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	List(ctx context.Context, page Page) ([]model.User, int64, error)
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, patch UserPatch) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// UserPatch: Username nil keeps the stored value; Email is only written when Set,
// and an explicit null clears it.
type UserPatch struct {
	Username *string
	Email    model.NullableString
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) List(ctx context.Context, page Page) ([]model.User, int64, error) {
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).
		Scopes(page.scope).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) Update(ctx context.Context, id uuid.UUID, patch UserPatch) (*model.User, error) {
	values := map[string]interface{}{
		"username":   coalesce("username", patch.Username),
		"updated_at": time.Now().UTC(),
	}
	if patch.Email.Set {
		values["email"] = patch.Email.Value()
	}

	var user model.User
	res := r.db.WithContext(ctx).Model(&user).Clauses(returning).
		Where("id = ?", id).
		Updates(values)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}

func (r *userRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
