package catalog

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/yucheng-lo/foundbot/internal/features/items"
)

// MaxCards is the platform limit on carousel columns. Excess items are
// dropped, not paginated.
const MaxCards = 10

const mapSearchURL = "https://www.google.com/maps/search/?api=1&query="

// coordPattern matches a strict "lat,lon" signed-decimal pair with
// optional whitespace around the comma.
var coordPattern = regexp.MustCompile(`^[+-]?\d+(?:\.\d+)?\s*,\s*[+-]?\d+(?:\.\d+)?$`)

// Builder turns lost items into presentation payloads. Placeholder and
// info link come from configuration so deployments can rebrand them.
type Builder struct {
	placeholderImageURL string
	infoLinkURL         string
}

func NewBuilder(placeholderImageURL, infoLinkURL string) *Builder {
	return &Builder{
		placeholderImageURL: placeholderImageURL,
		infoLinkURL:         infoLinkURL,
	}
}

// BuildCarousel renders up to MaxCards items, in input order, as one
// carousel. An empty input yields a plain text payload instead.
func (b *Builder) BuildCarousel(list []items.LostItem) Payload {
	if len(list) == 0 {
		return TextPayload{Text: "目前沒有失物招領資訊。"}
	}

	cards := make([]Card, 0, MaxCards)
	for _, item := range list {
		cards = append(cards, b.buildCard(item))
		if len(cards) >= MaxCards {
			break
		}
	}

	return CarouselPayload{
		AltText: "失物招領資訊",
		Cards:   cards,
	}
}

func (b *Builder) buildCard(item items.LostItem) Card {
	hero := item.ImageURL
	if hero == "" {
		hero = b.placeholderImageURL
	}

	return Card{
		HeroURL:     hero,
		Description: "描述: " + orNone(item.Description),
		Location:    "位置: " + orNone(item.Location),
		Date:        "日期: " + item.ReportDate.Format("2006-01-02"),
		InfoURI:     b.infoLinkURL,
		MapURI:      MapLink(item.Location),
	}
}

// MapLink builds a map search link for a location. A strict coordinate
// pair passes through trimmed; any other non-empty text becomes an
// escaped text query; empty text yields no link.
func MapLink(location string) string {
	trimmed := strings.TrimSpace(location)
	if trimmed == "" {
		return ""
	}

	if coordPattern.MatchString(trimmed) {
		lat, lon, _ := strings.Cut(trimmed, ",")
		return fmt.Sprintf("%s%s,%s", mapSearchURL, strings.TrimSpace(lat), strings.TrimSpace(lon))
	}

	return mapSearchURL + url.QueryEscape(trimmed)
}

func orNone(s string) string {
	if s == "" {
		return "無"
	}
	return s
}
