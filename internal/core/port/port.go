package port

import (
	"context"
	"sync"

	"github.com/styleloom/outfitter/internal/core/domain"
)

// Inbound ports: the operations the surrounding application calls.

type ProductsSearcher interface {
	Search(ctx context.Context, query string) (domain.SearchResult, error)
}

type OutfitSuggester interface {
	SuggestOutfit(
		ctx context.Context,
		anchor domain.Product,
		pool []domain.Product,
		occasion string,
		budget float64,
	) (domain.OutfitSuggestion, error)
}

type ProductViewRecorder interface {
	RecordView(ctx context.Context, p domain.Product) error
}

type WishlistManager interface {
	CreateFolder(ctx context.Context, name string) (domain.WishlistFolder, error)
	Folders(ctx context.Context) ([]domain.WishlistFolder, error)
	AddToFolder(ctx context.Context, folderID string, p domain.Product) error
	RemoveFromFolder(ctx context.Context, folderID, productID string) error
	DeleteFolder(ctx context.Context, folderID string) error
}

// Outbound ports: collaborators the core drives.

type SearchClient interface {
	Search(ctx context.Context, query string) ([]domain.Product, error)
	SearchNatural(ctx context.Context, prompt string) ([]domain.Product, error)
}

type CatalogStorage interface {
	StoreProducts(ctx context.Context, ps []domain.Product) error
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
}

type FallbackCatalog interface {
	Search(query string) []domain.Product
}

type WishlistStorage interface {
	CreateFolder(name string) (domain.WishlistFolder, error)
	Folders() []domain.WishlistFolder
	AddProduct(folderID string, p domain.Product) error
	RemoveProduct(folderID, productID string) error
	DeleteFolder(folderID string) error
}

type BrowseEventsProducer interface {
	ProduceProductViewed(ctx context.Context, v domain.ProductView) error
	ProduceOutfitRequested(ctx context.Context, v domain.OutfitRequest) error
}

type TrendingReader interface {
	Views(productID string) (int64, error)
}

type TrendingProcessor interface {
	Run(ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup)
	Close()
}
