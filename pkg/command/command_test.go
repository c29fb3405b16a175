package command

import (
	"strings"
	"testing"
)

const testID = "ffffffff-ffff-ffff-ffff-ffffffffffff"

func TestLightCommandOnOnly(t *testing.T) {
	req, err := (&LightCommand{ResourceID: testID}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if req.Body() != `{"on":{"on":true}}` {
		t.Errorf("body = %s", req.Body())
	}
	if req.ResourcePath() != "light/"+testID {
		t.Errorf("path = %s", req.ResourcePath())
	}
}

func TestLightCommandOff(t *testing.T) {
	req, err := (&LightCommand{ResourceID: testID, Off: true}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if req.Body() != `{"on":{"on":false}}` {
		t.Errorf("body = %s", req.Body())
	}
}

func TestLightCommandBrightness(t *testing.T) {
	cases := []struct {
		name   string
		cmd    LightCommand
		expect string
	}{
		{
			name:   "set",
			cmd:    LightCommand{ResourceID: testID, BrightnessAction: ActionSet, Brightness: 55},
			expect: `{"on":{"on":true},"dimming":{"brightness":55}}`,
		},
		{
			name:   "add",
			cmd:    LightCommand{ResourceID: testID, BrightnessAction: ActionAdd, Brightness: 10},
			expect: `{"on":{"on":true},"dimming_delta":{"action":"up","brightness_delta":10}}`,
		},
		{
			name:   "subtract",
			cmd:    LightCommand{ResourceID: testID, BrightnessAction: ActionSubtract, Brightness: 10},
			expect: `{"on":{"on":true},"dimming_delta":{"action":"down","brightness_delta":10}}`,
		},
		{
			name:   "set clamped low",
			cmd:    LightCommand{ResourceID: testID, BrightnessAction: ActionSet, Brightness: 0},
			expect: `{"on":{"on":true},"dimming":{"brightness":1}}`,
		},
		{
			name:   "set clamped high",
			cmd:    LightCommand{ResourceID: testID, BrightnessAction: ActionSet, Brightness: 150},
			expect: `{"on":{"on":true},"dimming":{"brightness":100}}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := tc.cmd.Build()
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if req.Body() != tc.expect {
				t.Errorf("body = %s, want %s", req.Body(), tc.expect)
			}
		})
	}
}

func TestLightCommandColorTemperature(t *testing.T) {
	req, err := (&LightCommand{ResourceID: testID, ColorTempAction: ActionSet, ColorTemp: 300}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if req.Body() != `{"on":{"on":true},"color_temperature":{"mirek":300}}` {
		t.Errorf("body = %s", req.Body())
	}

	// Mirek values below the API minimum clamp up.
	req, err = (&LightCommand{ResourceID: testID, ColorTempAction: ActionSet, ColorTemp: 100}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if req.Body() != `{"on":{"on":true},"color_temperature":{"mirek":153}}` {
		t.Errorf("body = %s", req.Body())
	}

	req, err = (&LightCommand{ResourceID: testID, ColorTempAction: ActionSubtract, ColorTemp: 50}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if req.Body() != `{"on":{"on":true},"color_temperature_delta":{"action":"down","mirek_delta":50}}` {
		t.Errorf("body = %s", req.Body())
	}
}

func TestLightCommandColor(t *testing.T) {
	req, err := (&LightCommand{ResourceID: testID, SetColor: true, X: 0.31, Y: 0.32}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if req.Body() != `{"on":{"on":true},"color":{"xy":{"x":0.31,"y":0.32}}}` {
		t.Errorf("body = %s", req.Body())
	}

	// Out-of-gamut coordinates clamp to [0,1].
	req, err = (&LightCommand{ResourceID: testID, SetColor: true, X: -0.5, Y: 1.5}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if req.Body() != `{"on":{"on":true},"color":{"xy":{"x":0,"y":1}}}` {
		t.Errorf("body = %s", req.Body())
	}
}

func TestGroupedLightCommandPath(t *testing.T) {
	req, err := (&GroupedLightCommand{ResourceID: testID, BrightnessAction: ActionSet, Brightness: 40}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if req.ResourcePath() != "grouped_light/"+testID {
		t.Errorf("path = %s", req.ResourcePath())
	}
	if !strings.Contains(req.Body(), `"dimming":{"brightness":40}`) {
		t.Errorf("body = %s", req.Body())
	}
}

func TestSmartSceneCommand(t *testing.T) {
	req, err := (&SmartSceneCommand{ResourceID: testID}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if req.Body() != `{"recall":{"action":"activate"}}` {
		t.Errorf("body = %s", req.Body())
	}
	if req.ResourcePath() != "smart_scene/"+testID {
		t.Errorf("path = %s", req.ResourcePath())
	}

	req, err = (&SmartSceneCommand{ResourceID: testID, Deactivate: true}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if req.Body() != `{"recall":{"action":"deactivate"}}` {
		t.Errorf("body = %s", req.Body())
	}
}

func TestSceneCommand(t *testing.T) {
	req, err := (&SceneCommand{ResourceID: testID}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if req.Body() != `{"recall":{"action":"active"}}` {
		t.Errorf("body = %s", req.Body())
	}

	req, err = (&SceneCommand{ResourceID: testID, Static: true, DurationMS: 4000, Brightness: 80}).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if req.Body() != `{"recall":{"action":"static","duration":4000,"dimming":{"brightness":80}}}` {
		t.Errorf("body = %s", req.Body())
	}
}

func TestBuildRejectsBadResourceID(t *testing.T) {
	if _, err := (&LightCommand{ResourceID: "not-a-resource-id"}).Build(); err == nil {
		t.Error("expected error for malformed resource id")
	}
	if _, err := (&SmartSceneCommand{}).Build(); err == nil {
		t.Error("expected error for missing resource id")
	}
}
