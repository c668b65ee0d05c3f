package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvquang/product-api/internal/events"
	"github.com/nvquang/product-api/internal/models"
)

type fakeProductRepo struct {
	products map[int64]*models.Product
	listErr  error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*models.Product)}
}

func (r *fakeProductRepo) List(ctx context.Context) ([]*models.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*models.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) UpdateByID(ctx context.Context, id int64, update models.ProductUpdate) (*models.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.Currency != nil {
		p.Currency = *update.Currency
	}
	if update.Image != nil {
		p.Image = *update.Image
	}
	return p, nil
}

func (r *fakeProductRepo) DeleteByID(ctx context.Context, id int64) (int64, error) {
	if _, ok := r.products[id]; !ok {
		return 0, nil
	}
	delete(r.products, id)
	return 1, nil
}

func (r *fakeProductRepo) EnsureIndexes(ctx context.Context) error {
	return nil
}

func validProduct() *models.Product {
	return &models.Product{
		ID:       1,
		Name:     "Keyboard",
		Price:    49.9,
		Currency: "USD",
		Image:    "https://img.example.com/keyboard.png",
	}
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *models.Product)
		want   string
	}{
		{
			name:   "complete product",
			mutate: func(p *models.Product) {},
			want:   "",
		},
		{
			name:   "missing id",
			mutate: func(p *models.Product) { p.ID = 0 },
			want:   "All fields are required!",
		},
		{
			name:   "missing name",
			mutate: func(p *models.Product) { p.Name = "" },
			want:   "All fields are required!",
		},
		{
			name:   "missing price",
			mutate: func(p *models.Product) { p.Price = 0 },
			want:   "All fields are required!",
		},
		{
			name:   "missing currency",
			mutate: func(p *models.Product) { p.Currency = "" },
			want:   "All fields are required!",
		},
		{
			name:   "missing image",
			mutate: func(p *models.Product) { p.Image = "" },
			want:   "All fields are required!",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(p)
			assert.Equal(t, tt.want, ValidateProduct(p))
		})
	}
}

func TestProductUsecase_SaveAndGet(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUsecase(repo, events.NewNoopPublisher())
	ctx := context.Background()

	saved, err := uc.SaveProduct(ctx, validProduct())
	require.NoError(t, err)
	assert.EqualValues(t, 1, saved.ID)

	got, err := uc.GetProductByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestProductUsecase_GetAllEmpty(t *testing.T) {
	uc := NewProductUsecase(newFakeProductRepo(), events.NewNoopPublisher())

	products, err := uc.GetAllProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductUsecase_GetMissing(t *testing.T) {
	uc := NewProductUsecase(newFakeProductRepo(), events.NewNoopPublisher())

	_, err := uc.GetProductByID(context.Background(), 99999)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProductUsecase_UpdateMissing(t *testing.T) {
	uc := NewProductUsecase(newFakeProductRepo(), events.NewNoopPublisher())

	name := "Mouse"
	_, err := uc.UpdateProduct(context.Background(), 42, models.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestProductUsecase_UpdateMergesFields(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUsecase(repo, events.NewNoopPublisher())
	ctx := context.Background()

	_, err := uc.SaveProduct(ctx, validProduct())
	require.NoError(t, err)

	price := 59.9
	updated, err := uc.UpdateProduct(ctx, 1, models.ProductUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 59.9, updated.Price)
	assert.Equal(t, "Keyboard", updated.Name)
}

// Delete resolves successfully even when nothing matched. This pins down the
// current contract: the service exposes no found/not-found signal for deletes.
func TestProductUsecase_DeleteMissingStillSucceeds(t *testing.T) {
	uc := NewProductUsecase(newFakeProductRepo(), events.NewNoopPublisher())

	err := uc.DeleteProduct(context.Background(), 12345)
	assert.NoError(t, err)
}

func TestProductUsecase_DeleteExisting(t *testing.T) {
	repo := newFakeProductRepo()
	uc := NewProductUsecase(repo, events.NewNoopPublisher())
	ctx := context.Background()

	_, err := uc.SaveProduct(ctx, validProduct())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct(ctx, 1))

	_, err = uc.GetProductByID(ctx, 1)
	assert.ErrorIs(t, err, models.ErrNotFound)
}
