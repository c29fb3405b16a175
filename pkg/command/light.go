package command

import "github.com/tbaccus/hue-dispatch/pkg/dispatch"

// LightCommand describes actions to perform on a single light resource.
type LightCommand struct {
	// ResourceID is the 36-char id of the light.
	ResourceID string
	// Off turns the light off; the zero value turns it on, matching the
	// body the bridge expects on every request.
	Off bool
	// BrightnessAction selects between dimming and dimming_delta tags.
	BrightnessAction Action
	// Brightness is the percentage to set [1,100] or delta to apply [0,100].
	Brightness int
	// ColorTempAction selects between color_temperature and
	// color_temperature_delta tags.
	ColorTempAction Action
	// ColorTemp is the mirek value to set [153,500] or delta to apply [0,347].
	ColorTemp int
	// SetColor enables the CIE xy color tag.
	SetColor bool
	// X, Y are CIE gamut coordinates in [0,1].
	X, Y float64
}

// GroupedLightCommand describes actions to perform on a light group. Groups
// accept the same tags as single lights, only the resource path differs.
type GroupedLightCommand LightCommand

type onState struct {
	On bool `json:"on"`
}

type dimming struct {
	Brightness int `json:"brightness"`
}

type dimmingDelta struct {
	Action          string `json:"action"`
	BrightnessDelta int    `json:"brightness_delta"`
}

type colorTemperature struct {
	Mirek int `json:"mirek"`
}

type colorTemperatureDelta struct {
	Action     string `json:"action"`
	MirekDelta int    `json:"mirek_delta"`
}

type xy struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type color struct {
	XY xy `json:"xy"`
}

type lightBody struct {
	On                    onState                `json:"on"`
	Dimming               *dimming               `json:"dimming,omitempty"`
	DimmingDelta          *dimmingDelta          `json:"dimming_delta,omitempty"`
	ColorTemperature      *colorTemperature      `json:"color_temperature,omitempty"`
	ColorTemperatureDelta *colorTemperatureDelta `json:"color_temperature_delta,omitempty"`
	Color                 *color                 `json:"color,omitempty"`
}

func (c *LightCommand) body() lightBody {
	body := lightBody{On: onState{On: !c.Off}}

	switch c.BrightnessAction {
	case ActionSet:
		body.Dimming = &dimming{Brightness: clamp(c.Brightness, MinBrightnessSet, MaxBrightnessSet)}
	case ActionAdd:
		body.DimmingDelta = &dimmingDelta{Action: "up", BrightnessDelta: clamp(c.Brightness, MinBrightnessDelta, MaxBrightnessDelta)}
	case ActionSubtract:
		body.DimmingDelta = &dimmingDelta{Action: "down", BrightnessDelta: clamp(c.Brightness, MinBrightnessDelta, MaxBrightnessDelta)}
	}

	switch c.ColorTempAction {
	case ActionSet:
		body.ColorTemperature = &colorTemperature{Mirek: clamp(c.ColorTemp, MinMirekSet, MaxMirekSet)}
	case ActionAdd:
		body.ColorTemperatureDelta = &colorTemperatureDelta{Action: "up", MirekDelta: clamp(c.ColorTemp, MinMirekDelta, MaxMirekDelta)}
	case ActionSubtract:
		body.ColorTemperatureDelta = &colorTemperatureDelta{Action: "down", MirekDelta: clamp(c.ColorTemp, MinMirekDelta, MaxMirekDelta)}
	}

	if c.SetColor {
		body.Color = &color{XY: xy{X: clampXY(c.X), Y: clampXY(c.Y)}}
	}

	return body
}

// Build encodes the command for the light resource path.
func (c *LightCommand) Build() (*dispatch.Request, error) {
	return encode(dispatch.ResourceLight, c.ResourceID, c.body())
}

// Build encodes the command for the grouped_light resource path.
func (c *GroupedLightCommand) Build() (*dispatch.Request, error) {
	lc := LightCommand(*c)
	return encode(dispatch.ResourceGroupedLight, c.ResourceID, lc.body())
}
