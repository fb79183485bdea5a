package catalog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yucheng-lo/foundbot/internal/features/items"
)

func newTestBuilder() *Builder {
	return NewBuilder("https://example.com/no-image.png", "https://example.com/about")
}

func TestBuildCarouselEmptyInput(t *testing.T) {
	payload := newTestBuilder().BuildCarousel(nil)

	text, ok := payload.(TextPayload)
	require.True(t, ok)
	require.Equal(t, "目前沒有失物招領資訊。", text.Text)
}

func TestBuildCarouselCapsAtTenCards(t *testing.T) {
	var list []items.LostItem
	for i := 0; i < 14; i++ {
		list = append(list, items.LostItem{
			ID:          fmt.Sprintf("item-%d", i),
			Description: fmt.Sprintf("item %d", i),
			ReportDate:  time.Now(),
		})
	}

	payload := newTestBuilder().BuildCarousel(list)

	carousel, ok := payload.(CarouselPayload)
	require.True(t, ok)
	require.Len(t, carousel.Cards, 10)
	// Input order preserved, the overflow is silently dropped.
	require.Equal(t, "描述: item 0", carousel.Cards[0].Description)
	require.Equal(t, "描述: item 9", carousel.Cards[9].Description)
}

func TestBuildCardFields(t *testing.T) {
	reported := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	payload := newTestBuilder().BuildCarousel([]items.LostItem{{
		ID:          "a",
		ImageURL:    "https://cdn.example.com/a.jpg",
		Description: "藍色皮夾",
		Location:    "25.1,121.5",
		ReportDate:  reported,
	}})

	carousel := payload.(CarouselPayload)
	card := carousel.Cards[0]
	require.Equal(t, "https://cdn.example.com/a.jpg", card.HeroURL)
	require.Equal(t, "描述: 藍色皮夾", card.Description)
	require.Equal(t, "位置: 25.1,121.5", card.Location)
	require.Equal(t, "日期: 2026-03-14", card.Date) // time of day discarded
	require.Equal(t, "https://example.com/about", card.InfoURI)
	require.Equal(t, "https://www.google.com/maps/search/?api=1&query=25.1,121.5", card.MapURI)
}

func TestBuildCardSubstitutesPlaceholders(t *testing.T) {
	payload := newTestBuilder().BuildCarousel([]items.LostItem{{
		ID:         "a",
		ReportDate: time.Now(),
	}})

	card := payload.(CarouselPayload).Cards[0]
	require.Equal(t, "https://example.com/no-image.png", card.HeroURL)
	require.Equal(t, "描述: 無", card.Description)
	require.Equal(t, "位置: 無", card.Location)
	require.Empty(t, card.MapURI)
}

func TestMapLink(t *testing.T) {
	cases := []struct {
		location string
		want     string
	}{
		{"", ""},
		{"   ", ""},
		{"25.1,121.5", "https://www.google.com/maps/search/?api=1&query=25.1,121.5"},
		{"-25.1 , 121.5", "https://www.google.com/maps/search/?api=1&query=-25.1,121.5"},
		{"+25,121", "https://www.google.com/maps/search/?api=1&query=+25,121"},
		{"abc,1.0", "https://www.google.com/maps/search/?api=1&query=abc%2C1.0"},
		{"圖書館三樓", "https://www.google.com/maps/search/?api=1&query=%E5%9C%96%E6%9B%B8%E9%A4%A8%E4%B8%89%E6%A8%93"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, MapLink(tc.location), "location %q", tc.location)
	}
}
