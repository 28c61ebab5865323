package service

import (
	"context"
	"errors"
	"testing"

	"go-shop-api/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductValidation(t *testing.T) {
	price := decimal.RequireFromString("9.99")
	tests := []struct {
		name  string
		req   CreateProductRequest
		field string
	}{
		{"missing name", CreateProductRequest{Price: &price, CategoryID: uuid.New()}, "product_name"},
		{"missing price", CreateProductRequest{ProductName: strPtr("Pen"), CategoryID: uuid.New()}, "price"},
		{"missing category", CreateProductRequest{ProductName: strPtr("Pen"), Price: &price}, "category_id"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubProductRepo{}
			svc := NewProductService(repo, nil)

			_, err := svc.CreateProduct(context.Background(), &tt.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Contains(t, err.Error(), tt.field)
			assert.Nil(t, repo.created)
		})
	}
}

func TestCreateProductKeepsDecimalPrice(t *testing.T) {
	repo := &stubProductRepo{}
	notifier := &recordingNotifier{}
	svc := NewProductService(repo, notifier)
	price := decimal.RequireFromString("1299.999999999999999999")
	categoryID := uuid.New()

	product, err := svc.CreateProduct(context.Background(), &CreateProductRequest{
		ProductName: strPtr("Laptop"),
		Price:       &price,
		CategoryID:  categoryID,
	})
	require.NoError(t, err)
	assert.True(t, price.Equal(product.Price))
	assert.Equal(t, categoryID, product.CategoryID)
	require.Len(t, notifier.events, 1)
	assert.Equal(t, resourceProduct, notifier.events[0].resource)
}

func TestCreateProductForeignKeyViolation(t *testing.T) {
	repo := &stubProductRepo{createErr: errors.New(`insert or update on table "products" violates foreign key constraint`)}
	notifier := &recordingNotifier{}
	svc := NewProductService(repo, notifier)
	price := decimal.NewFromInt(1)

	_, err := svc.CreateProduct(context.Background(), &CreateProductRequest{
		ProductName: strPtr("Ghost"),
		Price:       &price,
		CategoryID:  uuid.New(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "foreign key")
	assert.Empty(t, notifier.events)
}

func TestListProductsForwardsFilterAndPage(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, nil)
	categoryID := uuid.New()

	_, _, err := svc.ListProducts(context.Background(),
		repository.ProductFilter{CategoryID: &categoryID}, repository.NewPage(5, 3))
	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.CategoryID)
	assert.Equal(t, categoryID, *repo.lastFilter.CategoryID)
	assert.Equal(t, 10, repo.lastPage.Skip())
}

func TestUpdateProductForwardsOnlySuppliedFields(t *testing.T) {
	repo := &stubProductRepo{}
	svc := NewProductService(repo, nil)
	price := decimal.RequireFromString("5.00")

	_, err := svc.UpdateProduct(context.Background(), uuid.New(), &UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.Nil(t, repo.lastPatch.ProductName)
	assert.Nil(t, repo.lastPatch.CategoryID)
	require.NotNil(t, repo.lastPatch.Price)
	assert.Equal(t, "5", repo.lastPatch.Price.String())
}

func TestDeleteProductSurfacesDatabaseError(t *testing.T) {
	svc := NewProductService(&stubProductRepo{}, nil)

	err := svc.DeleteProduct(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, "connection refused", err.Error())
}
