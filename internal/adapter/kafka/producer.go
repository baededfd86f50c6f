package kafka

import (
	"context"
	"log/slog"

	"github.com/styleloom/outfitter/internal/core/domain"
	"github.com/styleloom/outfitter/internal/core/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.BrowseEventsProducer = (*BrowseEventsProducer)(nil)

// A producer is used for composition.
//
// Producing records to kafka broker and closing underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(
	ctx context.Context, rs ...*kgo.Record,
) error {
	const op = "produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

// A BrowseEventsProducer emits product view and outfit request events.
// Records are keyed by product identifier so per-product counting
// downstream sees a stable partition key.
type BrowseEventsProducer struct {
	producer       producer
	viewedTopic    string
	viewedEnc      Encoder
	requestedTopic string
	requestedEnc   Encoder
	opPrefix       string
}

func NewBrowseEventsProducer(
	opts ...ProducerOpt,
) (BrowseEventsProducer, error) {
	const op = "NewBrowseEventsProducer"

	if len(opts) != 3 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return BrowseEventsProducer{}, opErr(err, op)
		}
	}

	opPrefix := "BrowseEventsProducer"
	p := producer{
		opPrefix: opPrefix,
		cl:       options.cl,
	}

	return BrowseEventsProducer{
		producer:       p,
		viewedTopic:    options.viewedTopic,
		viewedEnc:      options.viewedEnc,
		requestedTopic: options.requestedTopic,
		requestedEnc:   options.requestedEnc,
		opPrefix:       opPrefix,
	}, nil
}

func (p BrowseEventsProducer) Close() {
	p.producer.close()
}

func (p BrowseEventsProducer) ProduceProductViewed(
	ctx context.Context, v domain.ProductView,
) error {
	const op = "ProduceProductViewed"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	s := productViewToSchemaV1(v)
	b, err := p.viewedEnc.Encode(s)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r := &kgo.Record{
		Topic: p.viewedTopic,
		Key:   []byte(s.ProductID),
		Value: b,
	}
	if err := p.producer.produce(ctx, r); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	return nil
}

func (p BrowseEventsProducer) ProduceOutfitRequested(
	ctx context.Context, v domain.OutfitRequest,
) error {
	const op = "ProduceOutfitRequested"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	s := outfitRequestToSchemaV1(v)
	b, err := p.requestedEnc.Encode(s)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r := &kgo.Record{
		Topic: p.requestedTopic,
		Key:   []byte(s.AnchorID),
		Value: b,
	}
	if err := p.producer.produce(ctx, r); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	return nil
}
