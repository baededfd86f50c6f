package kafka

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/lovoo/goka"
	"github.com/styleloom/outfitter/internal/core/domain"
	"github.com/styleloom/outfitter/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrTooFewOpts       = errors.New("too few options")
	ErrInvalidValueType = errors.New("invalid value type")
)

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl             ProducerClient
	viewedTopic    string
	viewedEnc      Encoder
	requestedTopic string
	requestedEnc   Encoder
}

func ProducerClientOpt(
	ctx context.Context, seedBrokers []string,
) ProducerOpt {
	return func(opts *producerOpts) error {
		cl, err := kgo.NewClient(
			kgo.SeedBrokers(seedBrokers...),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		)
		if err != nil {
			return err
		}

		if err := cl.Ping(ctx); err != nil {
			return err
		}
		opts.cl = cl
		return nil
	}
}

func ViewedStreamOpt(topic string, encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if topic == "" {
			return errors.New("viewed topic is empty string")
		}
		if encoder == nil {
			return errors.New("viewed encoder is nil")
		}
		opts.viewedTopic = topic
		opts.viewedEnc = encoder
		return nil
	}
}

func RequestedStreamOpt(topic string, encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if topic == "" {
			return errors.New("requested topic is empty string")
		}
		if encoder == nil {
			return errors.New("requested encoder is nil")
		}
		opts.requestedTopic = topic
		opts.requestedEnc = encoder
		return nil
	}
}

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type Decoder interface {
	Decode(b []byte, v any) error
}

type Serde interface {
	Encoder
	Decoder
}

func withNonlogProcOpt() goka.ProcessorOption {
	return goka.WithLogger(log.New(io.Discard, "", 0))
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func productViewToSchemaV1(v domain.ProductView) (s schema.ProductViewedV1) {
	s.ProductID = v.ProductID
	s.ProductName = v.ProductName
	s.Price = v.Price
	s.ViewedAt = v.ViewedAt.UnixMilli()
	return
}

func outfitRequestToSchemaV1(v domain.OutfitRequest) (s schema.OutfitRequestedV1) {
	s.AnchorID = v.AnchorID
	s.AnchorName = v.AnchorName
	s.Occasion = v.Occasion
	s.Budget = v.Budget
	s.TotalPrice = v.TotalPrice
	s.NComplements = v.NComplements
	s.RequestedAt = v.RequestedAt.UnixMilli()
	return
}
