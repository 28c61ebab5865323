package service

import (
	"context"

	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"

	"github.com/google/uuid"
)

const resourceUser = "user"

type UserService interface {
	ListUsers(ctx context.Context, page repository.Page) ([]model.User, int64, error)
	CreateUser(ctx context.Context, req *CreateUserRequest) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type CreateUserRequest struct {
	Username *string              `json:"username" validate:"required"`
	Email    model.NullableString `json:"email"` // omitted: "", null: NULL
}

type UpdateUserRequest struct {
	Username *string              `json:"username"`
	Email    model.NullableString `json:"email"` // omitted: keep, null: clear
}

type userService struct {
	repo     repository.UserRepository
	notifier ChangeNotifier
}

func NewUserService(repo repository.UserRepository, notifier ChangeNotifier) UserService {
	return &userService{repo: repo, notifier: orNoop(notifier)}
}

func (s *userService) ListUsers(ctx context.Context, page repository.Page) ([]model.User, int64, error) {
	return s.repo.List(ctx, page)
}

func (s *userService) CreateUser(ctx context.Context, req *CreateUserRequest) (*model.User, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	user := &model.User{Username: *req.Username}
	switch {
	case !req.Email.Set:
		empty := ""
		user.Email = &empty
	case req.Email.Valid:
		email := req.Email.String
		user.Email = &email
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.notifier.Publish(resourceUser, ActionCreated, user.ID, user)
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, resourceUser, id)
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*model.User, error) {
	user, err := s.repo.Update(ctx, id, repository.UserPatch{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		return nil, notFound(err, resourceUser, id)
	}

	s.notifier.Publish(resourceUser, ActionUpdated, user.ID, user)
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &NotFoundError{Resource: resourceUser, ID: id}
	}

	s.notifier.Publish(resourceUser, ActionDeleted, id, nil)
	return nil
}
