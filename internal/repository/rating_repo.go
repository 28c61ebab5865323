package repository

import (
	"context"
	"time"

	"go-shop-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingRepository interface {
	List(ctx context.Context, filter RatingFilter, page Page) ([]model.Rating, int64, error)
	Create(ctx context.Context, rating *model.Rating) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Rating, error)
	Update(ctx context.Context, id uuid.UUID, patch RatingPatch) (*model.Rating, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type RatingFilter struct {
	ProductID *uuid.UUID
	UserID    *uuid.UUID
}

func (f RatingFilter) scope(db *gorm.DB) *gorm.DB {
	if f.ProductID != nil {
		db = db.Where("product_id = ?", *f.ProductID)
	}
	if f.UserID != nil {
		db = db.Where("user_id = ?", *f.UserID)
	}
	return db
}

type RatingPatch struct {
	Rating    *int
	ProductID *uuid.UUID
	UserID    *uuid.UUID
}

type ratingRepo struct {
	db *gorm.DB
}

func NewRatingRepo(db *gorm.DB) RatingRepository {
	return &ratingRepo{db}
}

func (r *ratingRepo) List(ctx context.Context, filter RatingFilter, page Page) ([]model.Rating, int64, error) {
	ratings := make([]model.Rating, 0)
	if err := r.db.WithContext(ctx).
		Scopes(filter.scope, page.scope).
		Order("created_at ASC").
		Find(&ratings).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Rating{}).
		Scopes(filter.scope).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return ratings, total, nil
}

func (r *ratingRepo) Create(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Rating, error) {
	var rating model.Rating
	if err := r.db.WithContext(ctx).First(&rating, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepo) Update(ctx context.Context, id uuid.UUID, patch RatingPatch) (*model.Rating, error) {
	var rating model.Rating
	res := r.db.WithContext(ctx).Model(&rating).Clauses(returning).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"rating":    coalesce("rating", patch.Rating),
			"product_id": coalesce("product_id", patch.ProductID),
			"user_id":    coalesce("user_id", patch.UserID),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rating, nil
}

func (r *ratingRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Rating{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
