package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcshop/storefront/internal/catalog/domain"
)

type fakeBrowseRepository struct {
	domain.CatalogRepository

	categories map[string]*domain.Category
	companies  map[string]*domain.Company
	products   []domain.Product

	lastFilter domain.CompanyProductsFilter
	lastQuery  string
	lastOffset int
}

func (f *fakeBrowseRepository) FindCategoryBySlug(slug string) (*domain.Category, error) {
	if c, ok := f.categories[slug]; ok {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (f *fakeBrowseRepository) FindCompanyBySlug(slug string) (*domain.Company, error) {
	if c, ok := f.companies[slug]; ok {
		return c, nil
	}
	return nil, domain.ErrCompanyNotFound
}

func (f *fakeBrowseRepository) FindCompanyProducts(filter domain.CompanyProductsFilter) ([]domain.Product, int64, error) {
	f.lastFilter = filter

	end := filter.Offset + filter.Limit
	if end > len(f.products) {
		end = len(f.products)
	}
	if filter.Offset >= len(f.products) {
		return []domain.Product{}, int64(len(f.products)), nil
	}
	return f.products[filter.Offset:end], int64(len(f.products)), nil
}

func (f *fakeBrowseRepository) SearchProducts(query string, limit, offset int) ([]domain.Product, int64, error) {
	f.lastQuery = query
	f.lastOffset = offset

	end := offset + limit
	if end > len(f.products) {
		end = len(f.products)
	}
	if offset >= len(f.products) {
		return []domain.Product{}, int64(len(f.products)), nil
	}
	return f.products[offset:end], int64(len(f.products)), nil
}

func newBrowseRepository(productCount int) *fakeBrowseRepository {
	products := make([]domain.Product, productCount)
	for i := range products {
		products[i] = domain.Product{ID: uint(i + 1)}
	}

	return &fakeBrowseRepository{
		categories: map[string]*domain.Category{
			"graphics-cards": {ID: 1, Name: "Graphics Cards", Slug: "graphics-cards"},
		},
		companies: map[string]*domain.Company{
			"nvidia": {ID: 7, Name: "NVIDIA", Slug: "nvidia"},
		},
		products: products,
	}
}

func TestListCompanyProductsFirstPage(t *testing.T) {
	repo := newBrowseRepository(30)
	handler := NewListCompanyProductsHandler(repo)

	page, err := handler.Handle(ListCompanyProductsQuery{
		CategorySlug: "graphics-cards",
		CompanySlug:  "nvidia",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, PageSize, page.PageSize)
	assert.Len(t, page.Products, PageSize)
	assert.Equal(t, int64(30), page.Total)
	assert.Equal(t, "Graphics Cards", page.Category.Name)
	assert.Equal(t, "NVIDIA", page.Company.Name)
}

func TestListCompanyProductsLastPage(t *testing.T) {
	repo := newBrowseRepository(30)
	handler := NewListCompanyProductsHandler(repo)

	page, err := handler.Handle(ListCompanyProductsQuery{
		CategorySlug: "graphics-cards",
		CompanySlug:  "nvidia",
		Page:         3,
	})

	require.NoError(t, err)
	assert.Len(t, page.Products, 6)
	assert.Equal(t, 2*PageSize, repo.lastFilter.Offset)
}

func TestListCompanyProductsPriceFilter(t *testing.T) {
	repo := newBrowseRepository(3)
	handler := NewListCompanyProductsHandler(repo)

	_, err := handler.Handle(ListCompanyProductsQuery{
		CategorySlug: "graphics-cards",
		CompanySlug:  "nvidia",
		MinPrice:     "100.00",
		MaxPrice:     "500.00",
		SortBy:       domain.SortPriceLow,
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastFilter.MinPrice)
	require.NotNil(t, repo.lastFilter.MaxPrice)
	assert.Equal(t, "100", repo.lastFilter.MinPrice.String())
	assert.Equal(t, "500", repo.lastFilter.MaxPrice.String())
	assert.Equal(t, domain.SortPriceLow, repo.lastFilter.SortBy)
}

func TestListCompanyProductsInvalidPrice(t *testing.T) {
	repo := newBrowseRepository(3)
	handler := NewListCompanyProductsHandler(repo)

	_, err := handler.Handle(ListCompanyProductsQuery{
		CategorySlug: "graphics-cards",
		CompanySlug:  "nvidia",
		MinPrice:     "cheap",
	})

	assert.Error(t, err)
}

func TestListCompanyProductsUnknownCategory(t *testing.T) {
	repo := newBrowseRepository(3)
	handler := NewListCompanyProductsHandler(repo)

	_, err := handler.Handle(ListCompanyProductsQuery{
		CategorySlug: "toasters",
		CompanySlug:  "nvidia",
	})

	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestSearchProducts(t *testing.T) {
	repo := newBrowseRepository(5)
	handler := NewSearchProductsHandler(repo)

	page, err := handler.Handle(SearchProductsQuery{Query: "  ryzen  ", Page: 1})

	require.NoError(t, err)
	assert.Equal(t, "ryzen", repo.lastQuery)
	assert.Len(t, page.Products, 5)
	assert.Equal(t, int64(5), page.Total)
}

func TestSearchProductsEmptyQuery(t *testing.T) {
	repo := newBrowseRepository(5)
	handler := NewSearchProductsHandler(repo)

	page, err := handler.Handle(SearchProductsQuery{Query: "   "})

	require.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.Equal(t, int64(0), page.Total)
	assert.Empty(t, repo.lastQuery, "repository should not be queried")
}
