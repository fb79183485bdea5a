// ================== internal/features/webhook/encode.go ==================
package webhook

import (
	"github.com/line/line-bot-sdk-go/v7/linebot"

	"github.com/yucheng-lo/foundbot/internal/features/catalog"
)

// EncodeMessages converts the transport-neutral reply payloads into LINE
// messages. This is the only place the Flex wire shapes are known.
func EncodeMessages(payloads []catalog.Payload) []linebot.SendingMessage {
	messages := make([]linebot.SendingMessage, 0, len(payloads))
	for _, payload := range payloads {
		switch p := payload.(type) {
		case catalog.TextPayload:
			messages = append(messages, linebot.NewTextMessage(p.Text))
		case catalog.CarouselPayload:
			messages = append(messages, linebot.NewFlexMessage(p.AltText, encodeCarousel(p)))
		}
	}
	return messages
}

func encodeCarousel(p catalog.CarouselPayload) *linebot.CarouselContainer {
	bubbles := make([]*linebot.BubbleContainer, 0, len(p.Cards))
	for _, card := range p.Cards {
		bubbles = append(bubbles, encodeCard(card))
	}
	return &linebot.CarouselContainer{
		Type:     linebot.FlexContainerTypeCarousel,
		Contents: bubbles,
	}
}

func encodeCard(card catalog.Card) *linebot.BubbleContainer {
	footer := []linebot.FlexComponent{
		&linebot.ButtonComponent{
			Type:   linebot.FlexComponentTypeButton,
			Style:  linebot.FlexButtonStyleTypeLink,
			Height: linebot.FlexButtonHeightTypeSm,
			Action: linebot.NewURIAction("了解 LINE 應用", card.InfoURI),
		},
	}
	if card.MapURI != "" {
		footer = append(footer, &linebot.ButtonComponent{
			Type:   linebot.FlexComponentTypeButton,
			Style:  linebot.FlexButtonStyleTypeLink,
			Height: linebot.FlexButtonHeightTypeSm,
			Action: linebot.NewURIAction("地圖查看位置", card.MapURI),
		})
	}

	return &linebot.BubbleContainer{
		Type:      linebot.FlexContainerTypeBubble,
		Direction: linebot.FlexBubbleDirectionTypeLTR,
		Hero: &linebot.ImageComponent{
			Type:        linebot.FlexComponentTypeImage,
			URL:         card.HeroURL,
			Size:        linebot.FlexImageSizeTypeFull,
			AspectRatio: linebot.FlexImageAspectRatioType20to13,
			AspectMode:  linebot.FlexImageAspectModeTypeCover,
			Action:      linebot.NewURIAction("查看大圖", card.HeroURL),
		},
		Body: &linebot.BoxComponent{
			Type:   linebot.FlexComponentTypeBox,
			Layout: linebot.FlexBoxLayoutTypeVertical,
			Contents: []linebot.FlexComponent{
				&linebot.TextComponent{
					Type: linebot.FlexComponentTypeText,
					Text: card.Description,
					Wrap: true,
					Size: linebot.FlexTextSizeTypeMd,
				},
				&linebot.TextComponent{
					Type:  linebot.FlexComponentTypeText,
					Text:  card.Location,
					Wrap:  true,
					Size:  linebot.FlexTextSizeTypeSm,
					Color: "#666666",
				},
				&linebot.TextComponent{
					Type:  linebot.FlexComponentTypeText,
					Text:  card.Date,
					Wrap:  true,
					Size:  linebot.FlexTextSizeTypeSm,
					Color: "#666666",
				},
			},
		},
		Footer: &linebot.BoxComponent{
			Type:     linebot.FlexComponentTypeBox,
			Layout:   linebot.FlexBoxLayoutTypeVertical,
			Spacing:  linebot.FlexComponentSpacingTypeSm,
			Contents: footer,
		},
	}
}
