// ================== internal/features/catalog/payload.go ==================
package catalog

// Payload is the closed set of reply shapes the bot produces. The wire
// encoding (Flex JSON, plain text) lives in the transport adapter;
// nothing below this package knows about the messaging platform.
type Payload interface {
	isPayload()
}

// TextPayload is a plain text reply.
type TextPayload struct {
	Text string
}

// Card is one carousel entry for a single lost item.
type Card struct {
	HeroURL     string
	Description string
	Location    string
	Date        string
	InfoURI     string
	// MapURI is empty when the item has no usable location.
	MapURI string
}

// CarouselPayload is a bounded, ordered set of cards presented as one
// reply unit.
type CarouselPayload struct {
	AltText string
	Cards   []Card
}

func (TextPayload) isPayload()     {}
func (CarouselPayload) isPayload() {}
