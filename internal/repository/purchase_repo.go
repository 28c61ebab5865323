package repository

import (
	"context"
	"time"

	"go-shop-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	List(ctx context.Context, filter PurchaseFilter, page Page) ([]model.Purchase, int64, error)
	Create(ctx context.Context, purchase *model.Purchase) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	Update(ctx context.Context, id uuid.UUID, patch PurchasePatch) (*model.Purchase, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// PurchaseFilter narrows List to exact matches; a nil field is not applied.
type PurchaseFilter struct {
	ProductID *uuid.UUID
	UserID    *uuid.UUID
}

func (f PurchaseFilter) scope(db *gorm.DB) *gorm.DB {
	if f.ProductID != nil {
		db = db.Where("product_id = ?", *f.ProductID)
	}
	if f.UserID != nil {
		db = db.Where("user_id = ?", *f.UserID)
	}
	return db
}

type PurchasePatch struct {
	ProductID *uuid.UUID
	UserID    *uuid.UUID
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

func (r *purchaseRepo) List(ctx context.Context, filter PurchaseFilter, page Page) ([]model.Purchase, int64, error) {
	purchases := make([]model.Purchase, 0)
	if err := r.db.WithContext(ctx).
		Scopes(filter.scope, page.scope).
		Order("created_at ASC").
		Find(&purchases).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Scopes(filter.scope).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return purchases, total, nil
}

func (r *purchaseRepo) Create(ctx context.Context, purchase *model.Purchase) error {
	return r.db.WithContext(ctx).Create(purchase).Error
}

func (r *purchaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	if err := r.db.WithContext(ctx).First(&purchase, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepo) Update(ctx context.Context, id uuid.UUID, patch PurchasePatch) (*model.Purchase, error) {
	var purchase model.Purchase
	res := r.db.WithContext(ctx).Model(&purchase).Clauses(returning).
		Where("id = ?", id).
		Updates(map[string]interface{}{
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
	return &purchase, nil
}

func (r *purchaseRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Purchase{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
