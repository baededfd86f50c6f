package main

import (
	"context"
	"time"

	"github.com/styleloom/outfitter/config"
	"github.com/styleloom/outfitter/internal/app"
	"github.com/styleloom/outfitter/pkg/sigctx"
)

const closeTimeout = 5 * time.Second

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()
	cfg.Print()

	outfitterService := app.New(sigCtx, cfg)

	outfitterService.Run(closeApp)

	<-sigCtx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	defer cancel()

	outfitterService.Close(ctx)
}
