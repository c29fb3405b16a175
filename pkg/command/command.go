// Package command turns domain commands (light state, scene recall) into
// dispatchable requests. Values outside the ranges the Hue API accepts are
// clamped with a warning rather than rejected, so a command always encodes
// to a valid body.
package command

import (
	"encoding/json"

	"github.com/tbaccus/hue-dispatch/pkg/codes"
	"github.com/tbaccus/hue-dispatch/pkg/dispatch"
	log "github.com/tbaccus/hue-dispatch/pkg/logger"
)

// Action tells the builder how a numeric setting should be applied.
type Action int

const (
	// ActionNone leaves the setting untouched.
	ActionNone Action = iota
	// ActionSet sets the value absolutely.
	ActionSet
	// ActionAdd increases the value by the given delta.
	ActionAdd
	// ActionSubtract decreases the value by the given delta.
	ActionSubtract
)

// Brightness and color temperature bounds from the Hue API.
const (
	MinBrightnessSet   = 1
	MaxBrightnessSet   = 100
	MinBrightnessDelta = 0
	MaxBrightnessDelta = 100
	MinMirekSet        = 153
	MaxMirekSet        = 500
	MinMirekDelta      = 0
	MaxMirekDelta      = 347
)

// Command is anything that can be built into a dispatchable request.
type Command interface {
	Build() (*dispatch.Request, error)
}

// clamp forces value into [minimum, maximum], warning when it had to.
func clamp(value, minimum, maximum int) int {
	if value > maximum {
		log.Warnf("%d too large, clamped to %d", value, maximum)
		return maximum
	}
	if value < minimum {
		log.Warnf("%d too small, clamped to %d", value, minimum)
		return minimum
	}
	return value
}

func clampXY(v float64) float64 {
	if v < 0 {
		log.Warnf("%v too small, clamped to 0", v)
		return 0
	}
	if v > 1 {
		log.Warnf("%v too large, clamped to 1", v)
		return 1
	}
	return v
}

func encode(rt dispatch.ResourceType, resourceID string, body any) (*dispatch.Request, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, codes.Wrap(codes.ErrEncoding, err, "encode %s body", rt)
	}
	return dispatch.NewRequest(rt, resourceID, string(data))
}
