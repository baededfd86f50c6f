package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/styleloom/outfitter/internal/core/domain"
	"github.com/styleloom/outfitter/internal/core/service"
)

type MockSearchClient struct {
	mock.Mock
}

func (m *MockSearchClient) Search(
	ctx context.Context, query string,
) ([]domain.Product, error) {
	args := m.Called(ctx, query)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (m *MockSearchClient) SearchNatural(
	ctx context.Context, prompt string,
) ([]domain.Product, error) {
	args := m.Called(ctx, prompt)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) StoreProducts(
	ctx context.Context, ps []domain.Product,
) error {
	args := m.Called(ctx, ps)
	return args.Error(0)
}

func (m *MockCatalog) SearchProducts(
	ctx context.Context, query string,
) ([]domain.Product, error) {
	args := m.Called(ctx, query)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

type MockFallback struct {
	mock.Mock
}

func (m *MockFallback) Search(query string) []domain.Product {
	args := m.Called(query)
	ps, _ := args.Get(0).([]domain.Product)
	return ps
}

type MockWishlists struct {
	mock.Mock
}

func (m *MockWishlists) CreateFolder(name string) (domain.WishlistFolder, error) {
	args := m.Called(name)
	return args.Get(0).(domain.WishlistFolder), args.Error(1)
}

func (m *MockWishlists) Folders() []domain.WishlistFolder {
	args := m.Called()
	fs, _ := args.Get(0).([]domain.WishlistFolder)
	return fs
}

func (m *MockWishlists) AddProduct(folderID string, p domain.Product) error {
	args := m.Called(folderID, p)
	return args.Error(0)
}

func (m *MockWishlists) RemoveProduct(folderID, productID string) error {
	args := m.Called(folderID, productID)
	return args.Error(0)
}

func (m *MockWishlists) DeleteFolder(folderID string) error {
	args := m.Called(folderID)
	return args.Error(0)
}

type MockEvents struct {
	mock.Mock
}

func (m *MockEvents) ProduceProductViewed(
	ctx context.Context, v domain.ProductView,
) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *MockEvents) ProduceOutfitRequested(
	ctx context.Context, v domain.OutfitRequest,
) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

type MockTrending struct {
	mock.Mock
}

func (m *MockTrending) Views(productID string) (int64, error) {
	args := m.Called(productID)
	return args.Get(0).(int64), args.Error(1)
}

type fixture struct {
	searchClient *MockSearchClient
	catalog      *MockCatalog
	fallback     *MockFallback
	wishlists    *MockWishlists
	events       *MockEvents
	trending     *MockTrending
	service      service.Service
}

func newFixture() *fixture {
	f := &fixture{
		searchClient: new(MockSearchClient),
		catalog:      new(MockCatalog),
		fallback:     new(MockFallback),
		wishlists:    new(MockWishlists),
		events:       new(MockEvents),
		trending:     new(MockTrending),
	}
	f.service = service.New(
		f.searchClient, f.catalog, f.fallback,
		f.wishlists, f.events, f.trending, nil,
	)
	return f
}

func TestSearch(t *testing.T) {
	products := []domain.Product{
		{ID: "P1", Name: "Red Cotton Kurti", Price: 899},
	}

	t.Run("EmptyQuery", func(t *testing.T) {
		f := newFixture()
		_, err := f.service.Search(t.Context(), "   ")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmptyQuery)
	})

	t.Run("LiveResults", func(t *testing.T) {
		f := newFixture()
		f.searchClient.On("Search", mock.Anything, "red kurti").Return(products, nil)
		f.catalog.On("StoreProducts", mock.Anything, products).Return(nil)

		result, err := f.service.Search(t.Context(), "red kurti")
		require.NoError(t, err)
		assert.Equal(t, products, result.Products)
		assert.NotEmpty(t, result.Reasoning)
		f.catalog.AssertCalled(t, "StoreProducts", mock.Anything, products)
	})

	t.Run("OutfitIntentRoutesToNaturalSearch", func(t *testing.T) {
		f := newFixture()
		const query = "what should i wear to the office"
		f.searchClient.On("SearchNatural", mock.Anything, query).Return(products, nil)
		f.catalog.On("StoreProducts", mock.Anything, products).Return(nil)

		_, err := f.service.Search(t.Context(), query)
		require.NoError(t, err)
		f.searchClient.AssertCalled(t, "SearchNatural", mock.Anything, query)
		f.searchClient.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("CatalogFallback", func(t *testing.T) {
		f := newFixture()
		f.searchClient.On("Search", mock.Anything, "kurti").
			Return(nil, errors.New("scraper down"))
		f.catalog.On("SearchProducts", mock.Anything, "kurti").Return(products, nil)

		result, err := f.service.Search(t.Context(), "kurti")
		require.NoError(t, err)
		assert.Equal(t, products, result.Products)
	})

	t.Run("StaticPoolFallbackOrderedByTrending", func(t *testing.T) {
		f := newFixture()
		cold := domain.Product{ID: "S1", Name: "White skirt", Price: 649}
		hot := domain.Product{ID: "S2", Name: "Black palazzo", Price: 599}

		f.searchClient.On("Search", mock.Anything, "skirt").
			Return(nil, errors.New("scraper down"))
		f.catalog.On("SearchProducts", mock.Anything, "skirt").Return(nil, nil)
		f.fallback.On("Search", "skirt").Return([]domain.Product{cold, hot})
		f.trending.On("Views", "S1").Return(int64(2), nil)
		f.trending.On("Views", "S2").Return(int64(9), nil)

		result, err := f.service.Search(t.Context(), "skirt")
		require.NoError(t, err)
		require.Len(t, result.Products, 2)
		assert.Equal(t, "S2", result.Products[0].ID)
		assert.Equal(t, "S1", result.Products[1].ID)
	})
}

func TestSuggestOutfit(t *testing.T) {
	anchor := domain.Product{ID: "A1", Name: "Red Cotton Kurti", Price: 899}
	pool := []domain.Product{
		{ID: "B1", Name: "Black Palazzo Pants", Price: 599},
	}

	t.Run("ProducesEvent", func(t *testing.T) {
		f := newFixture()
		f.events.On("ProduceOutfitRequested", mock.Anything, mock.Anything).Return(nil)

		suggestion, err := f.service.SuggestOutfit(t.Context(), anchor, pool, "casual", 0)
		require.NoError(t, err)
		assert.Equal(t, anchor, suggestion.Anchor)
		f.events.AssertCalled(t, "ProduceOutfitRequested", mock.Anything, mock.Anything)
	})

	t.Run("InvalidAnchor", func(t *testing.T) {
		f := newFixture()
		_, err := f.service.SuggestOutfit(
			t.Context(), domain.Product{Name: "no id"}, pool, "", 0,
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidProduct)
		f.events.AssertNotCalled(t, "ProduceOutfitRequested", mock.Anything, mock.Anything)
	})

	t.Run("EventFailureIsNonFatal", func(t *testing.T) {
		f := newFixture()
		f.events.On("ProduceOutfitRequested", mock.Anything, mock.Anything).
			Return(errors.New("broker unavailable"))

		_, err := f.service.SuggestOutfit(t.Context(), anchor, pool, "", 0)
		assert.NoError(t, err)
	})
}

func TestRecordView(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		f := newFixture()
		p := domain.Product{ID: "P1", Name: "Red Cotton Kurti", Price: 899}
		f.events.On("ProduceProductViewed", mock.Anything, mock.Anything).Return(nil)

		require.NoError(t, f.service.RecordView(t.Context(), p))

		call := f.events.Calls[0]
		event := call.Arguments.Get(1).(domain.ProductView)
		assert.Equal(t, "P1", event.ProductID)
		assert.False(t, event.ViewedAt.IsZero())
	})

	t.Run("InvalidProduct", func(t *testing.T) {
		f := newFixture()
		err := f.service.RecordView(t.Context(), domain.Product{Name: "no id"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidProduct)
	})
}

func TestWishlistOps(t *testing.T) {
	t.Run("CreateAndList", func(t *testing.T) {
		f := newFixture()
		folder := domain.WishlistFolder{ID: "F1", Name: "Festive"}
		f.wishlists.On("CreateFolder", "Festive").Return(folder, nil)
		f.wishlists.On("Folders").Return([]domain.WishlistFolder{folder})

		created, err := f.service.CreateFolder(t.Context(), "Festive")
		require.NoError(t, err)
		assert.Equal(t, folder, created)

		folders, err := f.service.Folders(t.Context())
		require.NoError(t, err)
		assert.Len(t, folders, 1)
	})

	t.Run("AddInvalidProduct", func(t *testing.T) {
		f := newFixture()
		err := f.service.AddToFolder(t.Context(), "F1", domain.Product{})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidProduct)
	})

	t.Run("FolderErrorsWrapped", func(t *testing.T) {
		f := newFixture()
		f.wishlists.On("DeleteFolder", "missing").Return(domain.ErrFolderNotFound)

		err := f.service.DeleteFolder(t.Context(), "missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrFolderNotFound)
	})
}
