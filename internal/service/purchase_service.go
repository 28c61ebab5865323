package service

import (
	"context"

	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"

	"github.com/google/uuid"
)

const resourcePurchase = "purchase"

type PurchaseService interface {
	ListPurchases(ctx context.Context, filter repository.PurchaseFilter, page repository.Page) ([]model.Purchase, int64, error)
	CreatePurchase(ctx context.Context, req *CreatePurchaseRequest) (*model.Purchase, error)
	GetPurchase(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	UpdatePurchase(ctx context.Context, id uuid.UUID, req *UpdatePurchaseRequest) (*model.Purchase, error)
	DeletePurchase(ctx context.Context, id uuid.UUID) error
}

type CreatePurchaseRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	UserID    uuid.UUID `json:"user_id" validate:"uuid_required"`
}

type UpdatePurchaseRequest struct {
	ProductID *uuid.UUID `json:"product_id"`
	UserID    *uuid.UUID `json:"user_id"`
}

type purchaseService struct {
	repo     repository.PurchaseRepository
	notifier ChangeNotifier
}

func NewPurchaseService(repo repository.PurchaseRepository, notifier ChangeNotifier) PurchaseService {
	return &purchaseService{repo: repo, notifier: orNoop(notifier)}
}

func (s *purchaseService) ListPurchases(ctx context.Context, filter repository.PurchaseFilter, page repository.Page) ([]model.Purchase, int64, error) {
	return s.repo.List(ctx, filter, page)
}

func (s *purchaseService) CreatePurchase(ctx context.Context, req *CreatePurchaseRequest) (*model.Purchase, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	purchase := &model.Purchase{ProductID: req.ProductID, UserID: req.UserID}
	if err := s.repo.Create(ctx, purchase); err != nil {
		return nil, err
	}

	s.notifier.Publish(resourcePurchase, ActionCreated, purchase.ID, purchase)
	return purchase, nil
}

func (s *purchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	purchase, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, resourcePurchase, id)
	}
	return purchase, nil
}

func (s *purchaseService) UpdatePurchase(ctx context.Context, id uuid.UUID, req *UpdatePurchaseRequest) (*model.Purchase, error) {
	purchase, err := s.repo.Update(ctx, id, repository.PurchasePatch{
		ProductID: req.ProductID,
		UserID:    req.UserID,
	})
	if err != nil {
		return nil, notFound(err, resourcePurchase, id)
	}

	s.notifier.Publish(resourcePurchase, ActionUpdated, purchase.ID, purchase)
	return purchase, nil
}

func (s *purchaseService) DeletePurchase(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Resource: resourcePurchase, ID: id}
	}

	s.notifier.Publish(resourcePurchase, ActionDeleted, id, nil)
	return nil
}
