package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/styleloom/outfitter/internal/core/domain"
	"github.com/styleloom/outfitter/internal/core/outfit"
	"github.com/styleloom/outfitter/internal/core/port"
)

var _ port.ProductsSearcher = (*Service)(nil)
var _ port.OutfitSuggester = (*Service)(nil)
var _ port.ProductViewRecorder = (*Service)(nil)
var _ port.WishlistManager = (*Service)(nil)

type Service struct {
	searchClient port.SearchClient
	catalog      port.CatalogStorage
	fallback     port.FallbackCatalog
	wishlists    port.WishlistStorage
	events       port.BrowseEventsProducer
	trending     port.TrendingReader
	trendingProc port.TrendingProcessor
}

func New(
	searchClient port.SearchClient,
	catalog port.CatalogStorage,
	fallback port.FallbackCatalog,
	wishlists port.WishlistStorage,
	events port.BrowseEventsProducer,
	trending port.TrendingReader,
	trendingProc port.TrendingProcessor,
) Service {
	return Service{
		searchClient,
		catalog,
		fallback,
		wishlists,
		events,
		trending,
		trendingProc,
	}
}

// Run runs the service components in separate goroutines.
//
// Blocks the current goroutine while the components prepare to ready state.
func (s Service) Run(ctx context.Context, stopFn context.CancelFunc) {
	var wg sync.WaitGroup
	wg.Add(1)
	go s.trendingProc.Run(ctx, stopFn, &wg)
	wg.Wait()
}

func (s Service) Close() {
	s.trendingProc.Close()
}

// Search resolves a query through the scraper collaborator, falling back
// to the catalog storage and then the static pool. Outfit-style queries
// are routed to the natural-language search endpoint.
func (s Service) Search(
	ctx context.Context, query string,
) (domain.SearchResult, error) {
	const op = "Service.Search"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.SearchResult{}, fmt.Errorf("%s: %w", op, err)
	}

	if strings.TrimSpace(query) == "" {
		return domain.SearchResult{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyQuery)
	}

	products, err := s.liveSearch(ctx, query)
	if err != nil {
		log.Warn("live search unavailable, falling back", "err", err)
	}

	if len(products) > 0 {
		s.saveProducts(ctx, products)
		return domain.SearchResult{
			Products:            products,
			Reasoning:           fmt.Sprintf("Found %d products matching %q with great ratings and value.", len(products), query),
			PersonalizedMessage: fmt.Sprintf("Here are %d handpicked fashion items for %q!", len(products), query),
		}, nil
	}

	products, err = s.catalog.SearchProducts(ctx, query)
	if err != nil {
		log.Warn("catalog search failed, using static pool", "err", err)
	}

	if len(products) == 0 {
		products = s.orderByTrending(s.fallback.Search(query))
	}

	return domain.SearchResult{
		Products:            products,
		Reasoning:           fmt.Sprintf("Based on your search for %q, here is a curated collection of fashion items.", query),
		PersonalizedMessage: fmt.Sprintf("Here are %d handpicked fashion items for %q!", len(products), query),
	}, nil
}

func (s Service) liveSearch(
	ctx context.Context, query string,
) ([]domain.Product, error) {
	if outfit.DetectIntent(query) {
		return s.searchClient.SearchNatural(ctx, query)
	}
	return s.searchClient.Search(ctx, query)
}

// saveProducts upserts live results into the catalog so later fallbacks
// have data. Failures degrade to a warning.
func (s Service) saveProducts(ctx context.Context, ps []domain.Product) {
	const op = "Service.saveProducts"

	if err := s.catalog.StoreProducts(ctx, ps); err != nil {
		slog.Warn("failed to store products", "op", op, "err", err)
	}
}

// orderByTrending sorts the static pool by view count descending, keeping
// the seed order for ties. The engine itself stays deterministic; ordering
// personalization happens only here, outside of outfit assembly.
func (s Service) orderByTrending(ps []domain.Product) []domain.Product {
	type ranked struct {
		product domain.Product
		views   int64
	}

	rs := make([]ranked, 0, len(ps))
	for _, p := range ps {
		views, err := s.trending.Views(p.ID)
		if err != nil {
			views = 0
		}
		rs = append(rs, ranked{p, views})
	}

	sort.SliceStable(rs, func(i, j int) bool { return rs[i].views > rs[j].views })

	ordered := make([]domain.Product, len(rs))
	for i, r := range rs {
		ordered[i] = r.product
	}
	return ordered
}

// SuggestOutfit assembles a complete outfit around the anchor. All
// failures are resolved here: the caller receives either a complete,
// invariant-respecting suggestion or an error.
func (s Service) SuggestOutfit(
	ctx context.Context,
	anchor domain.Product,
	pool []domain.Product,
	occasion string,
	budget float64,
) (domain.OutfitSuggestion, error) {
	const op = "Service.SuggestOutfit"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.OutfitSuggestion{}, fmt.Errorf("%s: %w", op, err)
	}

	suggestion, err := outfit.Assemble(anchor, pool, occasion, budget)
	if err != nil {
		return domain.OutfitSuggestion{}, fmt.Errorf("%s: %w", op, err)
	}

	event := domain.OutfitRequest{
		AnchorID:     anchor.ID,
		AnchorName:   anchor.Name,
		Occasion:     suggestion.OccasionMatch,
		Budget:       budget,
		TotalPrice:   suggestion.TotalPrice,
		NComplements: countComplements(suggestion.Complements),
		RequestedAt:  time.Now().UTC(),
	}
	if err := s.events.ProduceOutfitRequested(ctx, event); err != nil {
		log.Warn("failed to produce outfit event", "err", err)
	}

	return suggestion, nil
}

func countComplements(c domain.OutfitComplements) int {
	return len(c.Tops) + len(c.Bottoms) + len(c.Footwear) +
		len(c.Accessories) + len(c.Outerwear)
}

// RecordView emits a product-viewed browse event.
func (s Service) RecordView(ctx context.Context, p domain.Product) error {
	const op = "Service.RecordView"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !p.Valid() {
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidProduct)
	}

	event := domain.ProductView{
		ProductID:   p.ID,
		ProductName: p.Name,
		Price:       p.Price,
		ViewedAt:    time.Now().UTC(),
	}
	if err := s.events.ProduceProductViewed(ctx, event); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Wishlist operations delegate to the in-memory store. Folders live only
// for the lifetime of the process.

func (s Service) CreateFolder(
	ctx context.Context, name string,
) (domain.WishlistFolder, error) {
	const op = "Service.CreateFolder"

	if err := ctx.Err(); err != nil {
		return domain.WishlistFolder{}, fmt.Errorf("%s: %w", op, err)
	}

	folder, err := s.wishlists.CreateFolder(name)
	if err != nil {
		return domain.WishlistFolder{}, fmt.Errorf("%s: %w", op, err)
	}
	return folder, nil
}

func (s Service) Folders(ctx context.Context) ([]domain.WishlistFolder, error) {
	const op = "Service.Folders"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.wishlists.Folders(), nil
}

func (s Service) AddToFolder(
	ctx context.Context, folderID string, p domain.Product,
) error {
	const op = "Service.AddToFolder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !p.Valid() {
		return fmt.Errorf("%s: %w", op, domain.ErrInvalidProduct)
	}

	if err := s.wishlists.AddProduct(folderID, p); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) RemoveFromFolder(
	ctx context.Context, folderID, productID string,
) error {
	const op = "Service.RemoveFromFolder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.wishlists.RemoveProduct(folderID, productID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s Service) DeleteFolder(ctx context.Context, folderID string) error {
	const op = "Service.DeleteFolder"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.wishlists.DeleteFolder(folderID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
