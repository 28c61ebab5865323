package service

import (
	"context"

	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"

	"github.com/google/uuid"
)

const resourceCategory = "category"

type CategoryService interface {
	ListCategories(ctx context.Context, page repository.Page) ([]model.Category, int64, error)
	CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*model.Category, error)
	GetCategory(ctx context.Context, id uuid.UUID) (*model.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *UpdateCategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type CreateCategoryRequest struct {
	CategoryName *string `json:"category_name" validate:"required"`
}

type UpdateCategoryRequest struct {
	CategoryName *string `json:"category_name"`
}

type categoryService struct {
	repo     repository.CategoryRepository
	notifier ChangeNotifier
}

func NewCategoryService(repo repository.CategoryRepository, notifier ChangeNotifier) CategoryService {
	return &categoryService{repo: repo, notifier: orNoop(notifier)}
}

func (s *categoryService) ListCategories(ctx context.Context, page repository.Page) ([]model.Category, int64, error) {
	return s.repo.List(ctx, page)
}

func (s *categoryService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*model.Category, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	category := &model.Category{CategoryName: *req.CategoryName}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	s.notifier.Publish(resourceCategory, ActionCreated, category.ID, category)
	return category, nil
}

func (s *categoryService) GetCategory(ctx context.Context, id uuid.UUID) (*model.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, resourceCategory, id)
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req *UpdateCategoryRequest) (*model.Category, error) {
	category, err := s.repo.Update(ctx, id, repository.CategoryPatch{
		CategoryName: req.CategoryName,
	})
	if err != nil {
		return nil, notFound(err, resourceCategory, id)
	}

	s.notifier.Publish(resourceCategory, ActionUpdated, category.ID, category)
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Resource: resourceCategory, ID: id}
	}

	s.notifier.Publish(resourceCategory, ActionDeleted, id, nil)
	return nil
}
