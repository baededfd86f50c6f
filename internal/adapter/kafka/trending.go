package kafka

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/lovoo/goka"
	"github.com/styleloom/outfitter/internal/core/port"
	"github.com/styleloom/outfitter/pkg/schema"
)

var (
	_ port.TrendingProcessor = (*TrendingProcessor)(nil)
	_ port.TrendingReader    = (*TrendingView)(nil)
)

// A processor is used for composition.
//
// Running and closing the underlying [goka.Processor]
type processor struct {
	opPrefix string
	gp       *goka.Processor
}

func (p *processor) run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer wg.Done()

	go p.runProc(ctx, stopFn)

	log.Info("preparing...")
	p.waitForReady(ctx)
	log.Info("running")
}

func (p *processor) runProc(ctx context.Context, stopFn context.CancelFunc) {
	const op = "run"
	log := slog.With("op", makeOp(p.opPrefix, op))

	defer stopFn()

	err := p.gp.Run(ctx)
	if err != nil {
		log.Error("stopped", "err", err)
		return
	}
	log.Info("stopped")
}

func (p *processor) waitForReady(ctx context.Context) {
	const op = "waitForReady"
	log := slog.With("op", makeOp(p.opPrefix, op))

	err := p.gp.WaitForReadyContext(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Error("fall down while preparing", "err", err)
		return
	}
}

func (p *processor) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))

	log.Info("closing processor...")
	p.gp.Stop()
	log.Info("processor is closed")
}

// A viewEventCodec used for serde [schema.ProductViewedV1]
type viewEventCodec struct {
	serde Serde
}

func newViewEventCodec(s Serde) viewEventCodec {
	return viewEventCodec{s}
}

func (c viewEventCodec) Encode(v any) ([]byte, error) {
	const op = "viewEventCodec.Encode"
	if _, ok := v.(schema.ProductViewedV1); !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	return c.serde.Encode(v)
}

func (c viewEventCodec) Decode(data []byte) (any, error) {
	const op = "viewEventCodec.Decode"
	var s schema.ProductViewedV1
	err := c.serde.Decode(data, &s)
	if err != nil {
		return nil, opErr(err, op)
	}
	return s, err
}

// A viewCount is the running number of views for one product.
type viewCount int64

// A viewCountCodec used for serde [viewCount]
type viewCountCodec struct{}

func (viewCountCodec) Encode(v any) ([]byte, error) {
	const op = "viewCountCodec.Encode"
	cv, ok := v.(viewCount)
	if !ok {
		return nil, opErr(ErrInvalidValueType, op)
	}
	data := strconv.AppendInt([]byte(nil), int64(cv), 10)
	return data, nil
}

func (viewCountCodec) Decode(data []byte) (any, error) {
	const op = "viewCountCodec.Decode"
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return nil, opErr(err, op)
	}
	return viewCount(n), nil
}

// A TrendingProcessor counts product view events
// from stream topic to group table, keyed by product identifier.
type TrendingProcessor struct {
	opPrefix string
	proc     processor
}

func NewTrendingProc(
	seedBrokers []string,
	inputStream string,
	groupTable string,
	productViewedSerde Serde,
) (*TrendingProcessor, error) {
	const op = "NewTrendingProcessor"

	var p TrendingProcessor

	gg := goka.DefineGroup(goka.Group(groupTable),
		goka.Input(
			goka.Stream(inputStream),
			newViewEventCodec(productViewedSerde),
			p.processFn,
		),
		goka.Persist(viewCountCodec{}),
	)

	gp, err := goka.NewProcessor(seedBrokers, gg, withNonlogProcOpt())
	if err != nil {
		return nil, opErr(err, op)
	}

	p.proc = processor{
		opPrefix: "TrendingProcessor",
		gp:       gp,
	}

	return &p, nil
}

func (p *TrendingProcessor) Run(
	ctx context.Context, stopFn context.CancelFunc, wg *sync.WaitGroup,
) {
	p.proc.run(ctx, stopFn, wg)
}

func (p *TrendingProcessor) Close() {
	p.proc.close()
}

func (p *TrendingProcessor) processFn(ctx goka.Context, msg any) {
	const op = "processFn"
	log := slog.With("op", makeOp(p.opPrefix, op))

	event, _ := msg.(schema.ProductViewedV1)

	n := viewCount(0)
	if v, ok := ctx.Value().(viewCount); ok {
		n = v
	}
	n++
	ctx.SetValue(n)
	log.Info(
		"counted view",
		"productID", event.ProductID,
		"views", int64(n),
	)
}

// A TrendingView reads per-product view counts from the group table.
type TrendingView struct {
	gv *goka.View
}

func NewTrendingView(
	seedBrokers []string, groupTable string,
) (*TrendingView, error) {
	const op = "NewTrendingView"

	gv, err := goka.NewView(
		seedBrokers,
		goka.GroupTable(goka.Group(groupTable)),
		viewCountCodec{},
	)
	if err != nil {
		return nil, opErr(err, op)
	}

	return &TrendingView{gv}, nil
}

func (v *TrendingView) Run(ctx context.Context) {
	const op = "TrendingView.Run"
	log := slog.With("op", op)

	err := v.gv.Run(ctx)
	if err != nil {
		log.Error("unexpected fail on run", "err", err)
	}
}

// Views returns the number of recorded views for the product.
// Unknown products have zero views.
func (v *TrendingView) Views(productID string) (int64, error) {
	const op = "TrendingView.Views"

	value, err := v.gv.Get(productID)
	if err != nil {
		return 0, opErr(err, op)
	}
	if value == nil {
		return 0, nil
	}

	n, ok := value.(viewCount)
	if !ok {
		return 0, opErr(ErrInvalidValueType, op)
	}
	return int64(n), nil
}
