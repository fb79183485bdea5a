// ================== internal/features/sessions/model.go ==================
package sessions

import (
	"fmt"

	errs "github.com/yucheng-lo/foundbot/pkg/errors"
)

// State is the user's position in the reporting flow. Idle is both the
// initial and the terminal state; the three waiting states always carry
// the id of the item being reported.
type State int

const (
	StateIdle State = iota
	StateWaitingForImage
	StateWaitingForDescription
	StateWaitingForLocation
)

// Stored codes are a stable wire format, kept apart from the in-memory
// representation. Idle sessions are never persisted, so it has no code.
var stateCodes = map[State]string{
	StateWaitingForImage:       "reporting_wait_image",
	StateWaitingForDescription: "reporting_wait_description",
	StateWaitingForLocation:    "reporting_wait_location",
}

var codeStates = map[string]State{
	"reporting_wait_image":       StateWaitingForImage,
	"reporting_wait_description": StateWaitingForDescription,
	"reporting_wait_location":    StateWaitingForLocation,
}

// Reporting reports whether the state is one of the three mid-flow
// states that must carry an item id.
func (s State) Reporting() bool {
	return s != StateIdle
}

func (s State) String() string {
	if code, ok := stateCodes[s]; ok {
		return code
	}
	return "idle"
}

func encodeState(s State) (string, error) {
	code, ok := stateCodes[s]
	if !ok {
		return "", fmt.Errorf("%w: state %d is not persistable", errs.ErrStorage, int(s))
	}
	return code, nil
}

func decodeState(code string) (State, error) {
	s, ok := codeStates[code]
	if !ok {
		return StateIdle, fmt.Errorf("%w: unknown session state %q", errs.ErrStorage, code)
	}
	return s, nil
}

type sessionDoc struct {
	UserID        string `bson:"_id"`
	State         string `bson:"state"`
	CurrentItemID string `bson:"currentItemId,omitempty"`
}
