package colors

// KnownColor identifies a symbolic palette entry. Its value is resolved
// through the registered Palette each time it is read, so a known color
// follows theme changes while an explicit ARGB color does not.
type KnownColor uint16

// System colors. Their values come from the platform through a Palette.
const (
	// KnownNone is the zero KnownColor; it never resolves.
	KnownNone KnownColor = iota

	ActiveBorder
	ActiveCaption
	ActiveCaptionText
	AppWorkspace
	// Control is the face color of 3-D elements such as buttons.
	// Light and Dark treat it specially.
	Control
	ControlDark
	ControlDarkDark
	ControlLight
	ControlLightLight
	ControlText
	Desktop
	GrayText
	Highlight
	HighlightText
	HotTrack
	InactiveBorder
	InactiveCaption
	InactiveCaptionText
	InfoBackground
	InfoText
	Menu
	MenuText
	ScrollBar
	Window
	WindowFrame
	WindowText
	ButtonFace
	ButtonHighlight
	ButtonShadow
	GradientActiveCaption
	GradientInactiveCaption
	MenuBar
	MenuHighlight

	// Named web colors.
	Transparent
	Black
	White
	Red
	Green
	Blue
	Yellow
	Cyan
	Magenta
	Gray
	Silver
	Maroon
	Olive
	Lime
	Teal
	Navy
	Purple
	Orange
	Brown
	Pink
	Gold
	DarkGray
	LightGray
	CornflowerBlue

	knownCount
)

// firstWebColor is the first non-system entry.
const firstWebColor = Transparent

var knownNames = [knownCount]string{
	KnownNone:               "",
	ActiveBorder:            "ActiveBorder",
	ActiveCaption:           "ActiveCaption",
	ActiveCaptionText:       "ActiveCaptionText",
	AppWorkspace:            "AppWorkspace",
	Control:                 "Control",
	ControlDark:             "ControlDark",
	ControlDarkDark:         "ControlDarkDark",
	ControlLight:            "ControlLight",
	ControlLightLight:       "ControlLightLight",
	ControlText:             "ControlText",
	Desktop:                 "Desktop",
	GrayText:                "GrayText",
	Highlight:               "Highlight",
	HighlightText:           "HighlightText",
	HotTrack:                "HotTrack",
	InactiveBorder:          "InactiveBorder",
	InactiveCaption:         "InactiveCaption",
	InactiveCaptionText:     "InactiveCaptionText",
	InfoBackground:          "InfoBackground",
	InfoText:                "InfoText",
	Menu:                    "Menu",
	MenuText:                "MenuText",
	ScrollBar:               "ScrollBar",
	Window:                  "Window",
	WindowFrame:             "WindowFrame",
	WindowText:              "WindowText",
	ButtonFace:              "ButtonFace",
	ButtonHighlight:         "ButtonHighlight",
	ButtonShadow:            "ButtonShadow",
	GradientActiveCaption:   "GradientActiveCaption",
	GradientInactiveCaption: "GradientInactiveCaption",
	MenuBar:                 "MenuBar",
	MenuHighlight:           "MenuHighlight",
	Transparent:             "Transparent",
	Black:                   "Black",
	White:                   "White",
	Red:                     "Red",
	Green:                   "Green",
	Blue:                    "Blue",
	Yellow:                  "Yellow",
	Cyan:                    "Cyan",
	Magenta:                 "Magenta",
	Gray:                    "Gray",
	Silver:                  "Silver",
	Maroon:                  "Maroon",
	Olive:                   "Olive",
	Lime:                    "Lime",
	Teal:                    "Teal",
	Navy:                    "Navy",
	Purple:                  "Purple",
	Orange:                  "Orange",
	Brown:                   "Brown",
	Pink:                    "Pink",
	Gold:                    "Gold",
	DarkGray:                "DarkGray",
	LightGray:               "LightGray",
	CornflowerBlue:          "CornflowerBlue",
}

// builtinValues holds classic desktop defaults for system colors and the
// CSS values of the web colors, as 0xAARRGGBB.
var builtinValues = [knownCount]uint32{
	ActiveBorder:            0xFFB4B4B4,
	ActiveCaption:           0xFF99B4D1,
	ActiveCaptionText:       0xFF000000,
	AppWorkspace:            0xFFABABAB,
	Control:                 0xFFF0F0F0,
	ControlDark:             0xFFA0A0A0,
	ControlDarkDark:         0xFF696969,
	ControlLight:            0xFFE3E3E3,
	ControlLightLight:       0xFFFFFFFF,
	ControlText:             0xFF000000,
	Desktop:                 0xFF000000,
	GrayText:                0xFF6D6D6D,
	Highlight:               0xFF0078D7,
	HighlightText:           0xFFFFFFFF,
	HotTrack:                0xFF0066CC,
	InactiveBorder:          0xFFF4F7FC,
	InactiveCaption:         0xFFBFCDDB,
	InactiveCaptionText:     0xFF000000,
	InfoBackground:          0xFFFFFFE1,
	InfoText:                0xFF000000,
	Menu:                    0xFFF0F0F0,
	MenuText:                0xFF000000,
	ScrollBar:               0xFFC8C8C8,
	Window:                  0xFFFFFFFF,
	WindowFrame:             0xFF646464,
	WindowText:              0xFF000000,
	ButtonFace:              0xFFF0F0F0,
	ButtonHighlight:         0xFFFFFFFF,
	ButtonShadow:            0xFFA0A0A0,
	GradientActiveCaption:   0xFFB9D1EA,
	GradientInactiveCaption: 0xFFD7E4F2,
	MenuBar:                 0xFFF0F0F0,
	MenuHighlight:           0xFF3399FF,
	Transparent:             0x00FFFFFF,
	Black:                   0xFF000000,
	White:                   0xFFFFFFFF,
	Red:                     0xFFFF0000,
	Green:                   0xFF008000,
	Blue:                    0xFF0000FF,
	Yellow:                  0xFFFFFF00,
	Cyan:                    0xFF00FFFF,
	Magenta:                 0xFFFF00FF,
	Gray:                    0xFF808080,
	Silver:                  0xFFC0C0C0,
	Maroon:                  0xFF800000,
	Olive:                   0xFF808000,
	Lime:                    0xFF00FF00,
	Teal:                    0xFF008080,
	Navy:                    0xFF000080,
	Purple:                  0xFF800080,
	Orange:                  0xFFFFA500,
	Brown:                   0xFFA52A2A,
	Pink:                    0xFFFFC0CB,
	Gold:                    0xFFFFD700,
	DarkGray:                0xFFA9A9A9,
	LightGray:               0xFFD3D3D3,
	CornflowerBlue:          0xFF6495ED,
}

// IsValid reports whether k names a palette entry.
func (k KnownColor) IsValid() bool {
	return k > KnownNone && k < knownCount
}

// IsSystem reports whether k is a platform system color.
func (k KnownColor) IsSystem() bool {
	return k > KnownNone && k < firstWebColor
}

// String returns the symbolic name, or "" for invalid values.
func (k KnownColor) String() string {
	if k >= knownCount {
		return ""
	}
	return knownNames[k]
}
