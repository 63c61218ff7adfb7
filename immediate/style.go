package immediate

import "github.com/go-theft-auto/quickgui"

// Spacing scale for layout constants.
const (
	SpaceNone float32 = 0
	SpaceXS   float32 = 2
	SpaceSM   float32 = 4
	SpaceMD   float32 = 8
	SpaceLG   float32 = 12
	SpaceXL   float32 = 16
)

// Style defines the look of windows, menus and widgets.
type Style struct {
	TextColor         uint32
	TextDisabledColor uint32

	// Windows
	WindowBgColor      uint32
	WindowBorderColor  uint32
	TitleBgColor       uint32
	TitleActiveBgColor uint32
	ResizeGripColor    uint32

	// Menus
	MenuBarBgColor  uint32
	PopupBgColor    uint32
	HoveredBgColor  uint32
	SelectedBgColor uint32

	// Buttons
	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	// Input frames (checkbox, fields, color channels)
	FrameBgColor        uint32
	FrameHoveredBgColor uint32
	FrameActiveBgColor  uint32
	BorderColor         uint32
	CheckmarkColor      uint32

	// Sizing
	FontScale     float32
	ItemSpacing   float32
	WindowPadding float32
	FramePadding  float32
	BorderSize    float32
}

// DarkStyle returns the default dark style.
func DarkStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: RGBA(128, 128, 128, 255),

		WindowBgColor:      RGBA(20, 20, 20, 240),
		WindowBorderColor:  RGBA(80, 80, 80, 255),
		TitleBgColor:       RGBA(40, 40, 45, 255),
		TitleActiveBgColor: RGBA(50, 80, 120, 255),
		ResizeGripColor:    RGBA(80, 110, 150, 200),

		MenuBarBgColor:  RGBA(35, 35, 35, 255),
		PopupBgColor:    RGBA(25, 25, 25, 250),
		HoveredBgColor:  RGBA(60, 60, 60, 255),
		SelectedBgColor: RGBA(50, 100, 150, 255),

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		FrameBgColor:        RGBA(30, 30, 30, 255),
		FrameHoveredBgColor: RGBA(40, 40, 50, 255),
		FrameActiveBgColor:  RGBA(50, 50, 65, 255),
		BorderColor:         RGBA(100, 100, 100, 255),
		CheckmarkColor:      RGBA(90, 160, 230, 255),

		FontScale:     1.0,
		ItemSpacing:   SpaceSM,
		WindowPadding: SpaceMD,
		FramePadding:  SpaceSM,
		BorderSize:    1,
	}
}

// LightStyle returns a light style with dark text.
func LightStyle() Style {
	s := DarkStyle()

	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(140, 140, 140, 255)

	s.WindowBgColor = RGBA(240, 240, 240, 245)
	s.WindowBorderColor = RGBA(170, 170, 170, 255)
	s.TitleBgColor = RGBA(210, 210, 215, 255)
	s.TitleActiveBgColor = RGBA(160, 190, 230, 255)
	s.ResizeGripColor = RGBA(120, 150, 200, 200)

	s.MenuBarBgColor = RGBA(225, 225, 225, 255)
	s.PopupBgColor = RGBA(250, 250, 250, 250)
	s.HoveredBgColor = RGBA(200, 210, 225, 255)
	s.SelectedBgColor = RGBA(150, 185, 230, 255)

	s.ButtonColor = RGBA(205, 205, 210, 255)
	s.ButtonHoveredColor = RGBA(185, 195, 215, 255)
	s.ButtonActiveColor = RGBA(160, 175, 205, 255)

	s.FrameBgColor = ColorWhite
	s.FrameHoveredBgColor = RGBA(235, 240, 250, 255)
	s.FrameActiveBgColor = RGBA(220, 230, 250, 255)
	s.BorderColor = RGBA(150, 150, 150, 255)
	s.CheckmarkColor = RGBA(40, 100, 190, 255)
	return s
}

// StyleForTheme picks the preset for a window theme. ThemeAuto is dark.
func StyleForTheme(t quickgui.Theme) Style {
	if t == quickgui.ThemeLight {
		return LightStyle()
	}
	return DarkStyle()
}
