package httphandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/styleloom/outfitter/internal/adapter/httphandler"
	"github.com/styleloom/outfitter/internal/core/domain"
)

type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(
	ctx context.Context, query string,
) (domain.SearchResult, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(domain.SearchResult), args.Error(1)
}

type MockSuggester struct {
	mock.Mock
}

func (m *MockSuggester) SuggestOutfit(
	ctx context.Context,
	anchor domain.Product,
	pool []domain.Product,
	occasion string,
	budget float64,
) (domain.OutfitSuggestion, error) {
	args := m.Called(ctx, anchor, pool, occasion, budget)
	return args.Get(0).(domain.OutfitSuggestion), args.Error(1)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) RecordView(ctx context.Context, p domain.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockWishlists struct {
	mock.Mock
}

func (m *MockWishlists) CreateFolder(
	ctx context.Context, name string,
) (domain.WishlistFolder, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(domain.WishlistFolder), args.Error(1)
}

func (m *MockWishlists) Folders(
	ctx context.Context,
) ([]domain.WishlistFolder, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.WishlistFolder), args.Error(1)
}

func (m *MockWishlists) AddToFolder(
	ctx context.Context, folderID string, p domain.Product,
) error {
	args := m.Called(ctx, folderID, p)
	return args.Error(0)
}

func (m *MockWishlists) RemoveFromFolder(
	ctx context.Context, folderID, productID string,
) error {
	args := m.Called(ctx, folderID, productID)
	return args.Error(0)
}

func (m *MockWishlists) DeleteFolder(
	ctx context.Context, folderID string,
) error {
	args := m.Called(ctx, folderID)
	return args.Error(0)
}

func jsonBody(t *testing.T, v any) *bytes.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(b)
}

func TestPostSearch(t *testing.T) {
	newMux := func(searcher *MockSearcher) *http.ServeMux {
		mux := http.NewServeMux()
		httphandler.RegisterSearch(mux, searcher)
		return mux
	}

	t.Run("Regular", func(t *testing.T) {
		searcher := new(MockSearcher)
		searcher.On("Search", mock.Anything, "red kurti").Return(
			domain.SearchResult{
				Products:            []domain.Product{{ID: "p1", Name: "Red Kurti", Price: 899}},
				Reasoning:           "testReasoning",
				PersonalizedMessage: "testMessage",
			}, nil,
		)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/search",
			jsonBody(t, httphandler.SearchRequest{Query: "red kurti"}),
		)
		rec := httptest.NewRecorder()
		newMux(searcher).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp httphandler.SearchResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		require.Len(t, resp.Products, 1)
		assert.Equal(t, "p1", resp.Products[0].ID)
		assert.Equal(t, "testReasoning", resp.Reasoning)
	})

	t.Run("EmptyQuery", func(t *testing.T) {
		searcher := new(MockSearcher)
		searcher.On("Search", mock.Anything, "").Return(
			domain.SearchResult{},
			fmt.Errorf("Service.Search: %w", domain.ErrEmptyQuery),
		)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/search",
			jsonBody(t, httphandler.SearchRequest{}),
		)
		rec := httptest.NewRecorder()
		newMux(searcher).ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp httphandler.FailureResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.NotEmpty(t, resp.Error)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		req := httptest.NewRequest(
			http.MethodPost, "/v1/search", bytes.NewReader([]byte("{broken")),
		)
		rec := httptest.NewRecorder()
		newMux(new(MockSearcher)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPostOutfit(t *testing.T) {
	newMux := func(suggester *MockSuggester) *http.ServeMux {
		mux := http.NewServeMux()
		httphandler.RegisterOutfit(mux, suggester)
		return mux
	}

	t.Run("Regular", func(t *testing.T) {
		suggester := new(MockSuggester)
		suggester.On(
			"SuggestOutfit",
			mock.Anything, mock.Anything, mock.Anything, "party", 5000.0,
		).Return(domain.OutfitSuggestion{
			Anchor: domain.Product{ID: "a1", Name: "Silk Saree"},
			Complements: domain.OutfitComplements{
				Footwear: []domain.Product{{ID: "f1", Name: "Sandals", Price: 799}},
			},
			TotalPrice:    3298,
			StylingTips:   "testTips",
			OccasionMatch: "party",
		}, nil)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/outfit",
			jsonBody(t, httphandler.OutfitRequest{
				Anchor:   httphandler.Product{ID: "a1", Name: "Silk Saree"},
				Pool:     []httphandler.Product{{ID: "f1", Name: "Sandals", Price: 799}},
				Occasion: "party",
				Budget:   5000,
			}),
		)
		rec := httptest.NewRecorder()
		newMux(suggester).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp httphandler.OutfitResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "a1", resp.Anchor.ID)
		require.Len(t, resp.Complements.Footwear, 1)
		assert.Equal(t, "party", resp.OccasionMatch)
		assert.InDelta(t, 3298, resp.TotalPrice, 1e-9)
	})

	t.Run("InvalidAnchor", func(t *testing.T) {
		suggester := new(MockSuggester)
		suggester.On(
			"SuggestOutfit",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything,
		).Return(
			domain.OutfitSuggestion{},
			fmt.Errorf("Service.SuggestOutfit: %w", domain.ErrInvalidProduct),
		)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/outfit",
			jsonBody(t, httphandler.OutfitRequest{}),
		)
		rec := httptest.NewRecorder()
		newMux(suggester).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPostView(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		recorder := new(MockRecorder)
		recorder.On("RecordView", mock.Anything, mock.Anything).Return(nil)

		mux := http.NewServeMux()
		httphandler.RegisterViews(mux, recorder)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/views",
			jsonBody(t, httphandler.ViewRequest{
				Product: httphandler.Product{ID: "p1", Name: "Red Kurti", Price: 899},
			}),
		)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusAccepted, rec.Code)

		got := recorder.Calls[0].Arguments.Get(1).(domain.Product)
		assert.Equal(t, "p1", got.ID)
	})

	t.Run("InvalidProduct", func(t *testing.T) {
		recorder := new(MockRecorder)
		recorder.On("RecordView", mock.Anything, mock.Anything).Return(
			fmt.Errorf("Service.RecordView: %w", domain.ErrInvalidProduct),
		)

		mux := http.NewServeMux()
		httphandler.RegisterViews(mux, recorder)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/views",
			jsonBody(t, httphandler.ViewRequest{}),
		)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestWishlistEndpoints(t *testing.T) {
	newMux := func(m *MockWishlists) *http.ServeMux {
		mux := http.NewServeMux()
		httphandler.RegisterWishlist(mux, m)
		return mux
	}

	t.Run("CreateFolder", func(t *testing.T) {
		m := new(MockWishlists)
		m.On("CreateFolder", mock.Anything, "Festive").Return(
			domain.WishlistFolder{ID: "f1", Name: "Festive"}, nil,
		)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/wishlist/folders",
			jsonBody(t, httphandler.CreateFolderRequest{Name: "Festive"}),
		)
		rec := httptest.NewRecorder()
		newMux(m).ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp httphandler.FolderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "f1", resp.Folder.ID)
	})

	t.Run("ListFolders", func(t *testing.T) {
		m := new(MockWishlists)
		m.On("Folders", mock.Anything).Return(
			[]domain.WishlistFolder{{ID: "f1", Name: "Festive"}}, nil,
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/wishlist/folders", nil)
		rec := httptest.NewRecorder()
		newMux(m).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp httphandler.FoldersResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp.Folders, 1)
		assert.Equal(t, "Festive", resp.Folders[0].Name)
	})

	t.Run("AddProductDuplicate", func(t *testing.T) {
		m := new(MockWishlists)
		m.On("AddToFolder", mock.Anything, "f1", mock.Anything).Return(
			fmt.Errorf("Service.AddToFolder: %w", domain.ErrDuplicateProduct),
		)

		req := httptest.NewRequest(
			http.MethodPost, "/v1/wishlist/folders/f1/products",
			jsonBody(t, httphandler.AddProductRequest{
				Product: httphandler.Product{ID: "p1"},
			}),
		)
		rec := httptest.NewRecorder()
		newMux(m).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("RemoveProduct", func(t *testing.T) {
		m := new(MockWishlists)
		m.On("RemoveFromFolder", mock.Anything, "f1", "p1").Return(nil)

		req := httptest.NewRequest(
			http.MethodDelete, "/v1/wishlist/folders/f1/products/p1", nil,
		)
		rec := httptest.NewRecorder()
		newMux(m).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("DeleteUnknownFolder", func(t *testing.T) {
		m := new(MockWishlists)
		m.On("DeleteFolder", mock.Anything, "ghost").Return(
			fmt.Errorf("Service.DeleteFolder: %w", domain.ErrFolderNotFound),
		)

		req := httptest.NewRequest(
			http.MethodDelete, "/v1/wishlist/folders/ghost", nil,
		)
		rec := httptest.NewRecorder()
		newMux(m).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAllowJSON(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := httphandler.AllowJSON(next)

	t.Run("JSONPasses", func(t *testing.T) {
		req := httptest.NewRequest(
			http.MethodPost, "/", bytes.NewReader([]byte(`{}`)),
		)
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("EmptyBodyPasses", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("OtherMediaTypeRejected", func(t *testing.T) {
		req := httptest.NewRequest(
			http.MethodPost, "/", bytes.NewReader([]byte("a=b")),
		)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})
}
