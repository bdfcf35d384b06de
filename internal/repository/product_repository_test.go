package repository_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dalanakids/shop-api/internal/model"
	"github.com/dalanakids/shop-api/internal/repository"
)

func newProduct(name string) *model.Product {
	return &model.Product{
		ID:           uuid.NewString(),
		Name:         name,
		Price:        19.99,
		Stock:        3,
		Brand:        "Dalana Kids",
		Description:  "soft cotton",
		CategoryName: "Todos",
	}
}

func sizeLabels(p model.Product) []string {
	labels := make([]string, len(p.Sizes))
	for i, s := range p.Sizes {
		labels[i] = s.Label
	}
	return labels
}

func TestProductRepo_CreateWithImagesAndSizes(t *testing.T) {
	repo := repository.NewProductRepo(newTestDB(t))

	p := newProduct("Vestido Flores")
	urls := []string{"https://img.test/1.jpg", "https://img.test/2.jpg"}
	require.NoError(t, repo.Create(ctx(), p, urls, []string{"S", "M"}))

	got, err := repo.GetByID(ctx(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Vestido Flores", got.Name)
	require.Len(t, got.Images, 2)
	assert.Equal(t, urls[0], got.Images[0].URL)
	assert.ElementsMatch(t, []string{"S", "M"}, sizeLabels(got))
}

func TestProductRepo_UnknownSizeLabelsAreSkipped(t *testing.T) {
	repo := repository.NewProductRepo(newTestDB(t))

	p := newProduct("Polera Rayas")
	require.NoError(t, repo.Create(ctx(), p, nil, []string{"M", "GIGANTE"}))

	got, err := repo.GetByID(ctx(), p.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"M"}, sizeLabels(got))
}

func TestProductRepo_DuplicateName(t *testing.T) {
	repo := repository.NewProductRepo(newTestDB(t))

	require.NoError(t, repo.Create(ctx(), newProduct("Gorro Lana"), nil, nil))
	err := repo.Create(ctx(), newProduct("Gorro Lana"), nil, nil)
	assert.ErrorIs(t, err, repository.ErrDuplicate)
}

func TestProductRepo_UpdateReplacesImagesAndSizes(t *testing.T) {
	repo := repository.NewProductRepo(newTestDB(t))

	p := newProduct("Pantalon Azul")
	require.NoError(t, repo.Create(ctx(), p, []string{"https://img.test/old.jpg"}, []string{"S"}))

	err := repo.Update(ctx(), p.ID,
		map[string]any{"price": 24.99, "stock": 7},
		[]string{"https://img.test/new1.jpg", "https://img.test/new2.jpg"},
		[]string{"L", "XL"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 24.99, got.Price)
	assert.Equal(t, 7, got.Stock)
	require.Len(t, got.Images, 2)
	assert.ElementsMatch(t, []string{"L", "XL"}, sizeLabels(got))
}

func TestProductRepo_UpdateKeepsAssociationsWhenNil(t *testing.T) {
	repo := repository.NewProductRepo(newTestDB(t))

	p := newProduct("Falda Roja")
	require.NoError(t, repo.Create(ctx(), p, []string{"https://img.test/a.jpg"}, []string{"M"}))

	// Nil slices mean "leave images and sizes alone".
	require.NoError(t, repo.Update(ctx(), p.ID, map[string]any{"stock": 1}, nil, nil))

	got, err := repo.GetByID(ctx(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock)
	assert.Len(t, got.Images, 1)
	assert.ElementsMatch(t, []string{"M"}, sizeLabels(got))
}

func TestProductRepo_UpdateUnknownProduct(t *testing.T) {
	repo := repository.NewProductRepo(newTestDB(t))
	err := repo.Update(ctx(), uuid.NewString(), map[string]any{"stock": 1}, nil, nil)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProductRepo_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewProductRepo(db)

	p := newProduct("Chaqueta Verde")
	require.NoError(t, repo.Create(ctx(), p, []string{"https://img.test/c.jpg"}, []string{"S", "M"}))
	require.NoError(t, repo.Delete(ctx(), p.ID))

	_, err := repo.GetByID(ctx(), p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	var imageCount int64
	require.NoError(t, db.Model(&model.ProductImage{}).Where("product_id = ?", p.ID).Count(&imageCount).Error)
	assert.Zero(t, imageCount)

	assert.ErrorIs(t, repo.Delete(ctx(), p.ID), repository.ErrNotFound)
}

func TestProductRepo_ListOrderedByName(t *testing.T) {
	repo := repository.NewProductRepo(newTestDB(t))

	require.NoError(t, repo.Create(ctx(), newProduct("Zapatos"), nil, nil))
	require.NoError(t, repo.Create(ctx(), newProduct("Abrigo"), nil, nil))

	products, err := repo.List(ctx())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Abrigo", products[0].Name)
	assert.Equal(t, "Zapatos", products[1].Name)
}
