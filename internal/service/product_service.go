package service

import (
	"context"

	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const resourceProduct = "product"

type ProductService interface {
	ListProducts(ctx context.Context, filter repository.ProductFilter, page repository.Page) ([]model.Product, int64, error)
	CreateProduct(ctx context.Context, req *CreateProductRequest) (*model.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type CreateProductRequest struct {
	ProductName *string          `json:"product_name" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	CategoryID  uuid.UUID        `json:"category_id" validate:"uuid_required"`
}

type UpdateProductRequest struct {
	ProductName *string          `json:"product_name"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *uuid.UUID       `json:"category_id"`
}

type productService struct {
	repo     repository.ProductRepository
	notifier ChangeNotifier
}

func NewProductService(repo repository.ProductRepository, notifier ChangeNotifier) ProductService {
	return &productService{repo: repo, notifier: orNoop(notifier)}
}

func (s *productService) ListProducts(ctx context.Context, filter repository.ProductFilter, page repository.Page) ([]model.Product, int64, error) {
	return s.repo.List(ctx, filter, page)
}

// CreateProduct does not check the category itself; a dangling category_id is
// rejected by the foreign key and surfaces as the database error.
func (s *productService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*model.Product, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	product := &model.Product{
		ProductName: *req.ProductName,
		Price:       *req.Price,
		CategoryID:  req.CategoryID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	s.notifier.Publish(resourceProduct, ActionCreated, product.ID, product)
	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, resourceProduct, id)
	}
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *UpdateProductRequest) (*model.Product, error) {
	product, err := s.repo.Update(ctx, id, repository.ProductPatch{
		ProductName: req.ProductName,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return nil, notFound(err, resourceProduct, id)
	}

	s.notifier.Publish(resourceProduct, ActionUpdated, product.ID, product)
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Resource: resourceProduct, ID: id}
	}

	s.notifier.Publish(resourceProduct, ActionDeleted, id, nil)
	return nil
}
