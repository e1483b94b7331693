// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	WindowTitle  = "Sketch"

	// MaxDeltaTime bounds the simulated step during long stalls so shape
	// update logic never sees a multi-second jump.
	MaxDeltaTime = 0.1

	DefaultLineWidth = 1.0

	// Demo tuning.
	DemoOrbitRadius      = 140.0
	DemoOrbitSpeed       = 0.9 // radians per second
	DemoSpinSpeed        = 1.6
	DemoLineCount        = 12
	DemoSceneSwitchSecs  = 12.0
	DemoBackgroundFlipMs = 2500
)

var (
	DefaultFill       = color.RGBA{0, 0, 0, 255}
	DefaultStroke     = color.RGBA{0, 0, 0, 255}
	DemoBackground    = "#141e28"
	DemoBackgroundAlt = "#28141e"
)
