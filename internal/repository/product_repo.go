package repository

import (
	"context"
	"time"

	"go-shop-api/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter, page Page) ([]model.Product, int64, error)
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// ProductFilter narrows List to exact matches; a nil field is not applied.
type ProductFilter struct {
	CategoryID *uuid.UUID
}

func (f ProductFilter) scope(db *gorm.DB) *gorm.DB {
	if f.CategoryID != nil {
		db = db.Where("category_id = ?", *f.CategoryID)
	}
	return db
}

type ProductPatch struct {
	ProductName *string
	Price       *decimal.Decimal
	CategoryID  *uuid.UUID
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) List(ctx context.Context, filter ProductFilter, page Page) ([]model.Product, int64, error) {
	products := make([]model.Product, 0)
	if err := r.db.WithContext(ctx).
		Scopes(filter.scope, page.scope).
		Order("created_at ASC").
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).
		Scopes(filter.scope).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(ctx context.Context, id uuid.UUID, patch ProductPatch) (*model.Product, error) {
	var product model.Product
	res := r.db.WithContext(ctx).Model(&product).Clauses(returning).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"product_name": coalesce("product_name", patch.ProductName),
			"price":        coalesce("price", patch.Price),
			"category_id":  coalesce("category_id", patch.CategoryID),
			"updated_at":   time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &product, nil
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
