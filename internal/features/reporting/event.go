// ================== internal/features/reporting/event.go ==================
package reporting

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// Event is an inbound message already stripped of transport concerns.
// The adapter has verified the sender; the machine only dispatches.
type Event interface {
	isEvent()
}

type TextEvent struct {
	UserID string
	Text   string
}

// ImageEvent defers the byte download: content is only fetched when the
// machine actually wants to store the image.
type ImageEvent struct {
	UserID  string
	Content func(ctx context.Context) (io.ReadCloser, error)
}

type LocationEvent struct {
	UserID    string
	Address   string
	Latitude  float64
	Longitude float64
	HasCoords bool
}

func (TextEvent) isEvent()     {}
func (ImageEvent) isEvent()    {}
func (LocationEvent) isEvent() {}

// Value renders the location as stored on the item: the address when
// the platform resolved one, the raw coordinate pair otherwise.
func (e LocationEvent) Value() string {
	if addr := strings.TrimSpace(e.Address); addr != "" {
		return addr
	}
	if e.HasCoords {
		return fmt.Sprintf("%g,%g", e.Latitude, e.Longitude)
	}
	return ""
}
