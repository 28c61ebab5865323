package repository

import (
	"context"
	"time"

	"go-shop-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	List(ctx context.Context, page Page) ([]model.Category, int64, error)
	Create(ctx context.Context, category *model.Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error)
	Update(ctx context.Context, id uuid.UUID, patch CategoryPatch) (*model.Category, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// CategoryPatch holds the columns of a partial update; nil keeps the stored value.
type CategoryPatch struct {
	CategoryName *string
}

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db}
}

func (r *categoryRepo) List(ctx context.Context, page Page) ([]model.Category, int64, error) {
	categories := make([]model.Category, 0)
	if err := r.db.WithContext(ctx).
		Scopes(page.scope).
		Order("created_at DESC").
		Find(&categories).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Update applies the patch in a single UPDATE ... RETURNING statement.
// It returns gorm.ErrRecordNotFound when no row has the id.
func (r *categoryRepo) Update(ctx context.Context, id uuid.UUID, patch CategoryPatch) (*model.Category, error) {
	var category model.Category
	res := r.db.WithContext(ctx).Model(&category).Clauses(returning).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"category_name": coalesce("category_name", patch.CategoryName),
			"updated_at":    time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &category, nil
}

func (r *categoryRepo) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
