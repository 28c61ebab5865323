package service

import (
	"context"

	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"

	"github.com/google/uuid"
)

const resourceRating = "rating"

type RatingService interface {
	ListRatings(ctx context.Context, filter repository.RatingFilter, page repository.Page) ([]model.Rating, int64, error)
	CreateRating(ctx context.Context, req *CreateRatingRequest) (*model.Rating, error)
	GetRating(ctx context.Context, id uuid.UUID) (*model.Rating, error)
	UpdateRating(ctx context.Context, id uuid.UUID, req *UpdateRatingRequest) (*model.Rating, error)
	DeleteRating(ctx context.Context, id uuid.UUID) error
}

// CreateRatingRequest only checks presence; the score range is not enforced.
type CreateRatingRequest struct {
	Rating    *int      `json:"rating" validate:"required"`
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	UserID    uuid.UUID `json:"user_id" validate:"uuid_required"`
}

type UpdateRatingRequest struct {
	Rating    *int       `json:"rating"`
	ProductID *uuid.UUID `json:"product_id"`
	UserID    *uuid.UUID `json:"user_id"`
}

type ratingService struct {
	repo     repository.RatingRepository
	notifier ChangeNotifier
}

func NewRatingService(repo repository.RatingRepository, notifier ChangeNotifier) RatingService {
	return &ratingService{repo: repo, notifier: orNoop(notifier)}
}

func (s *ratingService) ListRatings(ctx context.Context, filter repository.RatingFilter, page repository.Page) ([]model.Rating, int64, error) {
	return s.repo.List(ctx, filter, page)
}

func (s *ratingService) CreateRating(ctx context.Context, req *CreateRatingRequest) (*model.Rating, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	rating := &model.Rating{
		Rating:    *req.Rating,
		ProductID: req.ProductID,
		UserID:    req.UserID,
	}
	if err := s.repo.Create(ctx, rating); err != nil {
		return nil, err
	}

	s.notifier.Publish(resourceRating, ActionCreated, rating.ID, rating)
	return rating, nil
}

func (s *ratingService) GetRating(ctx context.Context, id uuid.UUID) (*model.Rating, error) {
	rating, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, resourceRating, id)
	}
	return rating, nil
}

func (s *ratingService) UpdateRating(ctx context.Context, id uuid.UUID, req *UpdateRatingRequest) (*model.Rating, error) {
	rating, err := s.repo.Update(ctx, id, repository.RatingPatch{
		Rating:    req.Rating,
		ProductID: req.ProductID,
		UserID:    req.UserID,
	})
	if err != nil {
		return nil, notFound(err, resourceRating, id)
	}

	s.notifier.Publish(resourceRating, ActionUpdated, rating.ID, rating)
	return rating, nil
}

func (s *ratingService) DeleteRating(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Resource: resourceRating, ID: id}
	}

	s.notifier.Publish(resourceRating, ActionDeleted, id, nil)
	return nil
}
