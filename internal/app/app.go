package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/styleloom/outfitter/config"
	"github.com/styleloom/outfitter/internal/adapter/httphandler"
	"github.com/styleloom/outfitter/internal/adapter/kafka"
	"github.com/styleloom/outfitter/internal/adapter/searchclient"
	"github.com/styleloom/outfitter/internal/adapter/staticpool"
	"github.com/styleloom/outfitter/internal/adapter/storage"
	"github.com/styleloom/outfitter/internal/adapter/wishlist"
	"github.com/styleloom/outfitter/internal/core/port"
	"github.com/styleloom/outfitter/internal/core/service"
	"github.com/styleloom/outfitter/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type serdes struct {
	productViewed   schema.Serde
	outfitRequested schema.Serde
}

type outbound struct {
	sqldb        storage.SQLDB
	events       kafka.BrowseEventsProducer
	trendingProc *kafka.TrendingProcessor
	trendingView *kafka.TrendingView
}

type coreService struct {
	searcher  port.ProductsSearcher
	suggester port.OutfitSuggester
	recorder  port.ProductViewRecorder
	wishlists port.WishlistManager
	runner    service.Service
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	serdes     serdes
	outbound   outbound
	service    coreService
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerdes()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	urls := app.cfg.Broker.SchemaRegistryURLs
	ctx := app.ctx

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	viewedSS := app.cfg.Broker.Topics.ProductViews + "-value"
	viewedSerde, err := schema.NewSerdeProductViewedV1(
		ctx,
		schema.SubjectOpt(viewedSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	requestedSS := app.cfg.Broker.Topics.OutfitRequests + "-value"
	requestedSerde, err := schema.NewSerdeOutfitRequestedV1(
		ctx,
		schema.SubjectOpt(requestedSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.serdes.productViewed = viewedSerde
	app.serdes.outfitRequested = requestedSerde
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	ctx := app.ctx
	seedBrokers := app.cfg.Broker.SeedBrokers
	viewsTopic := app.cfg.Broker.Topics.ProductViews
	requestsTopic := app.cfg.Broker.Topics.OutfitRequests
	trendingGroup := app.cfg.Broker.Topics.TrendingByViews

	sqldb, err := storage.NewSQLDB(ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.sqldb = sqldb

	events, err := kafka.NewBrowseEventsProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers),
		kafka.ViewedStreamOpt(viewsTopic, app.serdes.productViewed),
		kafka.RequestedStreamOpt(requestsTopic, app.serdes.outfitRequested),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.events = events

	trendingProc, err := kafka.NewTrendingProc(
		seedBrokers, viewsTopic, trendingGroup, app.serdes.productViewed,
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.trendingProc = trendingProc

	trendingView, err := kafka.NewTrendingView(seedBrokers, trendingGroup)
	if err != nil {
		app.fallDown(op, err)
	}
	app.outbound.trendingView = trendingView
}

func (app *App) initCoreService() {
	scraperCfg := app.cfg.Scraper

	s := service.New(
		searchclient.New(scraperCfg.BaseURL, scraperCfg.Timeout),
		storage.NewCatalogRepository(app.outbound.sqldb),
		staticpool.New(),
		wishlist.NewMemoryStore(),
		app.outbound.events,
		app.outbound.trendingView,
		app.outbound.trendingProc,
	)
	app.service.searcher = s
	app.service.suggester = s
	app.service.recorder = s
	app.service.wishlists = s
	app.service.runner = s
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterSearch(mux, app.service.searcher)
	httphandler.RegisterOutfit(mux, app.service.suggester)
	httphandler.RegisterViews(mux, app.service.recorder)
	httphandler.RegisterWishlist(mux, app.service.wishlists)

	handler := httphandler.AllowJSON(mux)
	httpServer := httphandler.NewHTTPServer(addr, handler)
	app.httpServer = httpServer
}

func (app *App) Run(stopFn context.CancelFunc) {
	app.service.runner.Run(app.ctx, stopFn)
	go app.outbound.trendingView.Run(app.ctx)
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.service.runner.Close()
	app.outbound.events.Close()
	app.outbound.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
