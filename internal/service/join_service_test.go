package service

import (
	"context"
	"errors"
	"testing"

	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubPurchaseRepo struct {
	rows       map[uuid.UUID]*model.Purchase
	lastFilter repository.PurchaseFilter
}

func (r *stubPurchaseRepo) List(_ context.Context, f repository.PurchaseFilter, _ repository.Page) ([]model.Purchase, int64, error) {
	r.lastFilter = f
	out := []model.Purchase{}
	for _, p := range r.rows {
		if f.ProductID != nil && p.ProductID != *f.ProductID {
			continue
		}
		if f.UserID != nil && p.UserID != *f.UserID {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *stubPurchaseRepo) Create(_ context.Context, p *model.Purchase) error {
	p.ID = uuid.New()
	r.rows[p.ID] = p
	return nil
}

func (r *stubPurchaseRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Purchase, error) {
	if p, ok := r.rows[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPurchaseRepo) Update(_ context.Context, id uuid.UUID, patch repository.PurchasePatch) (*model.Purchase, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if patch.ProductID != nil {
		p.ProductID = *patch.ProductID
	}
	if patch.UserID != nil {
		p.UserID = *patch.UserID
	}
	return p, nil
}

func (r *stubPurchaseRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

type stubRatingRepo struct {
	rows map[uuid.UUID]*model.Rating
}

func (r *stubRatingRepo) List(_ context.Context, _ repository.RatingFilter, _ repository.Page) ([]model.Rating, int64, error) {
	return []model.Rating{}, int64(len(r.rows)), nil
}

func (r *stubRatingRepo) Create(_ context.Context, rt *model.Rating) error {
	rt.ID = uuid.New()
	r.rows[rt.ID] = rt
	return nil
}

func (r *stubRatingRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Rating, error) {
	if rt, ok := r.rows[id]; ok {
		return rt, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRatingRepo) Update(_ context.Context, id uuid.UUID, patch repository.RatingPatch) (*model.Rating, error) {
	rt, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if patch.Rating != nil {
		rt.Rating = *patch.Rating
	}
	if patch.ProductID != nil {
		rt.ProductID = *patch.ProductID
	}
	if patch.UserID != nil {
		rt.UserID = *patch.UserID
	}
	return rt, nil
}

func (r *stubRatingRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func TestPurchaseLifecycle(t *testing.T) {
	repo := &stubPurchaseRepo{rows: map[uuid.UUID]*model.Purchase{}}
	notifier := &recordingNotifier{}
	svc := NewPurchaseService(repo, notifier)
	ctx := context.Background()
	productID, userID, otherUser := uuid.New(), uuid.New(), uuid.New()

	purchase, err := svc.CreatePurchase(ctx, &CreatePurchaseRequest{ProductID: productID, UserID: userID})
	require.NoError(t, err)

	updated, err := svc.UpdatePurchase(ctx, purchase.ID, &UpdatePurchaseRequest{UserID: &otherUser})
	require.NoError(t, err)
	assert.Equal(t, productID, updated.ProductID)
	assert.Equal(t, otherUser, updated.UserID)

	rows, total, err := svc.ListPurchases(ctx, repository.PurchaseFilter{UserID: &userID}, repository.NewPage(10, 1))
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Zero(t, total)

	require.NoError(t, svc.DeletePurchase(ctx, purchase.ID))
	_, err = svc.GetPurchase(ctx, purchase.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	actions := []string{}
	for _, ev := range notifier.events {
		actions = append(actions, ev.action)
	}
	assert.Equal(t, []string{ActionCreated, ActionUpdated, ActionDeleted}, actions)
}

func TestCreatePurchaseRequiresBothIDs(t *testing.T) {
	svc := NewPurchaseService(&stubPurchaseRepo{rows: map[uuid.UUID]*model.Purchase{}}, nil)

	_, err := svc.CreatePurchase(context.Background(), &CreatePurchaseRequest{ProductID: uuid.New()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
	assert.Contains(t, err.Error(), "user_id")
}

func TestRatingZeroIsAPresentValue(t *testing.T) {
	repo := &stubRatingRepo{rows: map[uuid.UUID]*model.Rating{}}
	svc := NewRatingService(repo, nil)
	zero := 0

	rating, err := svc.CreateRating(context.Background(), &CreateRatingRequest{
		Rating:    &zero,
		ProductID: uuid.New(),
		UserID:    uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, rating.Rating)
}

func TestUpdateRatingPreservesUntouchedFields(t *testing.T) {
	repo := &stubRatingRepo{rows: map[uuid.UUID]*model.Rating{}}
	svc := NewRatingService(repo, nil)
	ctx := context.Background()
	four, five := 4, 5
	productID, userID := uuid.New(), uuid.New()

	rating, err := svc.CreateRating(ctx, &CreateRatingRequest{Rating: &four, ProductID: productID, UserID: userID})
	require.NoError(t, err)

	updated, err := svc.UpdateRating(ctx, rating.ID, &UpdateRatingRequest{Rating: &five})
	require.NoError(t, err)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, productID, updated.ProductID)
	assert.Equal(t, userID, updated.UserID)

	_, err = svc.UpdateRating(ctx, uuid.New(), &UpdateRatingRequest{})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCreateRatingRequiresScore(t *testing.T) {
	svc := NewRatingService(&stubRatingRepo{rows: map[uuid.UUID]*model.Rating{}}, nil)

	_, err := svc.CreateRating(context.Background(), &CreateRatingRequest{ProductID: uuid.New(), UserID: uuid.New()})
	assert.True(t, errors.Is(err, ErrValidation))
}
