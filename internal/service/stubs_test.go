package service

import (
	"context"
	"errors"
	"time"

	"go-shop-api/internal/model"
	"go-shop-api/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ── Recording notifier ───────────────────────────────────────────────────────

type publishedEvent struct {
	resource, action string
	id               uuid.UUID
	data             interface{}
}

type recordingNotifier struct {
	events []publishedEvent
}

func (n *recordingNotifier) Publish(resource, action string, id uuid.UUID, data interface{}) {
	n.events = append(n.events, publishedEvent{resource, action, id, data})
}

// ── In-memory CategoryRepository stub ────────────────────────────────────────

type stubCategoryRepo struct {
	rows      map[uuid.UUID]*model.Category
	createErr error
	deleteErr error
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{rows: make(map[uuid.UUID]*model.Category)}
}

func (r *stubCategoryRepo) List(_ context.Context, page repository.Page) ([]model.Category, int64, error) {
	out := make([]model.Category, 0, len(r.rows))
	for _, c := range r.rows {
		out = append(out, *c)
	}
	return out, int64(len(r.rows)), nil
}

func (r *stubCategoryRepo) Create(_ context.Context, c *model.Category) error {
	if r.createErr != nil {
		return r.createErr
	}
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	r.rows[c.ID] = c
	return nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Category, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, id uuid.UUID, patch repository.CategoryPatch) (*model.Category, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if patch.CategoryName != nil {
		c.CategoryName = *patch.CategoryName
	}
	now := time.Now()
	c.UpdatedAt = &now
	cp := *c
	return &cp, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if r.deleteErr != nil {
		return 0, r.deleteErr
	}
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

// ── In-memory UserRepository stub ────────────────────────────────────────────

type stubUserRepo struct {
	rows map[uuid.UUID]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{rows: make(map[uuid.UUID]*model.User)}
}

func (r *stubUserRepo) List(_ context.Context, _ repository.Page) ([]model.User, int64, error) {
	out := make([]model.User, 0, len(r.rows))
	for _, u := range r.rows {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	r.rows[u.ID] = u
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Update(_ context.Context, id uuid.UUID, patch repository.UserPatch) (*model.User, error) {
	u, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.Email.Set {
		if patch.Email.Valid {
			email := patch.Email.String
			u.Email = &email
		} else {
			u.Email = nil
		}
	}
	now := time.Now()
	u.UpdatedAt = &now
	return u, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

// ── ProductRepository stub that records what it was asked ───────────────────

type stubProductRepo struct {
	created    *model.Product
	createErr  error
	lastFilter repository.ProductFilter
	lastPage   repository.Page
	lastPatch  repository.ProductPatch
	updateErr  error
}

func (r *stubProductRepo) List(_ context.Context, f repository.ProductFilter, p repository.Page) ([]model.Product, int64, error) {
	r.lastFilter, r.lastPage = f, p
	return []model.Product{}, 0, nil
}

func (r *stubProductRepo) Create(_ context.Context, p *model.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	p.ID = uuid.New()
	r.created = p
	return nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Product, error) {
	if r.created != nil && r.created.ID == id {
		return r.created, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProductRepo) Update(_ context.Context, id uuid.UUID, patch repository.ProductPatch) (*model.Product, error) {
	r.lastPatch = patch
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	return &model.Product{BaseModel: model.BaseModel{ID: id}}, nil
}

func (r *stubProductRepo) Delete(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, errors.New("connection refused")
}
