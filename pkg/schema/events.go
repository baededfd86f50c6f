package schema

const ProductViewedSchemaTextV1 = `{
	"type": "record",
	"namespace": "outfitter",
	"name": "product_viewed",
	"fields" : [
		{"name": "product_id", "type": "string"},
		{"name": "product_name", "type": "string"},
		{"name": "price", "type": "double"},
		{"name": "viewed_at", "type": "long"}
	]
}`

const OutfitRequestedSchemaTextV1 = `{
	"type": "record",
	"namespace": "outfitter",
	"name": "outfit_requested",
	"fields" : [
		{"name": "anchor_id", "type": "string"},
		{"name": "anchor_name", "type": "string"},
		{"name": "occasion", "type": "string"},
		{"name": "budget", "type": "double"},
		{"name": "total_price", "type": "double"},
		{"name": "n_complements", "type": "int"},
		{"name": "requested_at", "type": "long"}
	]
}`

type (
	// ProductViewedV1 is the wire form of a product view event.
	// Timestamps are unix milliseconds.
	ProductViewedV1 struct {
		ProductID   string  `avro:"product_id"`
		ProductName string  `avro:"product_name"`
		Price       float64 `avro:"price"`
		ViewedAt    int64   `avro:"viewed_at"`
	}

	// OutfitRequestedV1 is the wire form of an outfit suggestion request.
	// Timestamps are unix milliseconds.
	OutfitRequestedV1 struct {
		AnchorID     string  `avro:"anchor_id"`
		AnchorName   string  `avro:"anchor_name"`
		Occasion     string  `avro:"occasion"`
		Budget       float64 `avro:"budget"`
		TotalPrice   float64 `avro:"total_price"`
		NComplements int     `avro:"n_complements"`
		RequestedAt  int64   `avro:"requested_at"`
	}
)
