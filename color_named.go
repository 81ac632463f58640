package xd2d

import "strings"

// Named colors, including the CSS color keywords.
var (
	Invisible            = Color{0, 0, 0, 0}
	AliceBlue            = Color{240, 248, 255, 255}
	AntiqueWhite         = Color{250, 235, 215, 255}
	Aqua                 = Color{0, 255, 255, 255}
	Aquamarine           = Color{127, 255, 212, 255}
	Azure                = Color{240, 255, 255, 255}
	Beige                = Color{245, 245, 220, 255}
	Bisque               = Color{255, 228, 196, 255}
	Black                = Color{0, 0, 0, 255}
	BlanchedAlmond       = Color{255, 235, 205, 255}
	Blue                 = Color{0, 0, 255, 255}
	BlueViolet           = Color{138, 43, 226, 255}
	Brown                = Color{165, 42, 42, 255}
	BurlyWood            = Color{222, 184, 135, 255}
	CadetBlue            = Color{95, 158, 160, 255}
	Chartreuse           = Color{127, 255, 0, 255}
	Chocolate            = Color{210, 105, 30, 255}
	Coral                = Color{255, 127, 80, 255}
	CornflowerBlue       = Color{100, 149, 237, 255}
	Cornsilk             = Color{255, 248, 220, 255}
	Crimson              = Color{220, 20, 60, 255}
	Cyan                 = Color{0, 255, 255, 255}
	DarkBlue             = Color{0, 0, 139, 255}
	DarkCyan             = Color{0, 139, 139, 255}
	DarkGoldenRod        = Color{184, 134, 11, 255}
	DarkGray             = Color{169, 169, 169, 255}
	DarkGreen            = Color{0, 100, 0, 255}
	DarkGrey             = Color{169, 169, 169, 255}
	DarkKhaki            = Color{189, 183, 107, 255}
	DarkMagenta          = Color{139, 0, 139, 255}
	DarkOliveGreen       = Color{85, 107, 47, 255}
	DarkOrange           = Color{255, 140, 0, 255}
	DarkOrchid           = Color{153, 50, 204, 255}
	DarkRed              = Color{139, 0, 0, 255}
	DarkSalmon           = Color{233, 150, 122, 255}
	DarkSeaGreen         = Color{143, 188, 143, 255}
	DarkSlateBlue        = Color{72, 61, 139, 255}
	DarkSlateGray        = Color{47, 79, 79, 255}
	DarkSlateGrey        = Color{47, 79, 79, 255}
	DarkTurquoise        = Color{0, 206, 209, 255}
	DarkViolet           = Color{148, 0, 211, 255}
	DeepPink             = Color{255, 20, 147, 255}
	DeepSkyBlue          = Color{0, 191, 255, 255}
	DimGray              = Color{105, 105, 105, 255}
	DimGrey              = Color{105, 105, 105, 255}
	DodgerBlue           = Color{30, 144, 255, 255}
	FireBrick            = Color{178, 34, 34, 255}
	FloralWhite          = Color{255, 250, 240, 255}
	ForestGreen          = Color{34, 139, 34, 255}
	Fuchsia              = Color{255, 0, 255, 255}
	Gainsboro            = Color{220, 220, 220, 255}
	GhostWhite           = Color{248, 248, 255, 255}
	Gold                 = Color{255, 215, 0, 255}
	GoldenRod            = Color{218, 165, 32, 255}
	Gray                 = Color{128, 128, 128, 255}
	Green                = Color{0, 128, 0, 255}
	GreenYellow          = Color{173, 255, 47, 255}
	Grey                 = Color{128, 128, 128, 255}
	HoneyDew             = Color{240, 255, 240, 255}
	HotPink              = Color{255, 105, 180, 255}
	IndianRed            = Color{205, 92, 92, 255}
	Indigo               = Color{75, 0, 130, 255}
	Ivory                = Color{255, 255, 240, 255}
	Khaki                = Color{240, 230, 140, 255}
	Lavender             = Color{230, 230, 250, 255}
	LavenderBlush        = Color{255, 240, 245, 255}
	LawnGreen            = Color{124, 252, 0, 255}
	LemonChiffon         = Color{255, 250, 205, 255}
	LightBlue            = Color{173, 216, 230, 255}
	LightCoral           = Color{240, 128, 128, 255}
	LightCyan            = Color{224, 255, 255, 255}
	LightGoldenRodYellow = Color{250, 250, 210, 255}
	LightGray            = Color{211, 211, 211, 255}
	LightGreen           = Color{144, 238, 144, 255}
	LightGrey            = Color{211, 211, 211, 255}
	LightPink            = Color{255, 182, 193, 255}
	LightSalmon          = Color{255, 160, 122, 255}
	LightSeaGreen        = Color{32, 178, 170, 255}
	LightSkyBlue         = Color{135, 206, 250, 255}
	LightSlateGray       = Color{119, 136, 153, 255}
	LightSlateGrey       = Color{119, 136, 153, 255}
	LightSteelBlue       = Color{176, 196, 222, 255}
	LightYellow          = Color{255, 255, 224, 255}
	Lime                 = Color{0, 255, 0, 255}
	LimeGreen            = Color{50, 205, 50, 255}
	Linen                = Color{250, 240, 230, 255}
	Magenta              = Color{255, 0, 255, 255}
	Maroon               = Color{128, 0, 0, 255}
	MediumAquaMarine     = Color{102, 205, 170, 255}
	MediumBlue           = Color{0, 0, 205, 255}
	MediumOrchid         = Color{186, 85, 211, 255}
	MediumPurple         = Color{147, 112, 219, 255}
	MediumSeaGreen       = Color{60, 179, 113, 255}
	MediumSlateBlue      = Color{123, 104, 238, 255}
	MediumSpringGreen    = Color{0, 250, 154, 255}
	MediumTurquoise      = Color{72, 209, 204, 255}
	MediumVioletRed      = Color{199, 21, 133, 255}
	MidnightBlue         = Color{25, 25, 112, 255}
	MintCream            = Color{245, 255, 250, 255}
	MistyRose            = Color{255, 228, 225, 255}
	Moccasin             = Color{255, 228, 181, 255}
	NavajoWhite          = Color{255, 222, 173, 255}
	Navy                 = Color{0, 0, 128, 255}
	OldLace              = Color{253, 245, 230, 255}
	Olive                = Color{128, 128, 0, 255}
	OliveDrab            = Color{107, 142, 35, 255}
	Orange               = Color{255, 165, 0, 255}
	OrangeRed            = Color{255, 69, 0, 255}
	Orchid               = Color{218, 112, 214, 255}
	PaleGoldenRod        = Color{238, 232, 170, 255}
	PaleGreen            = Color{152, 251, 152, 255}
	PaleTurquoise        = Color{175, 238, 238, 255}
	PaleVioletRed        = Color{219, 112, 147, 255}
	PapayaWhip           = Color{255, 239, 213, 255}
	PeachPuff            = Color{255, 218, 185, 255}
	Peru                 = Color{205, 133, 63, 255}
	Pink                 = Color{255, 192, 203, 255}
	Plum                 = Color{221, 160, 221, 255}
	PowderBlue           = Color{176, 224, 230, 255}
	Purple               = Color{128, 0, 128, 255}
	RebeccaPurple        = Color{102, 51, 153, 255}
	Red                  = Color{255, 0, 0, 255}
	RosyBrown            = Color{188, 143, 143, 255}
	RoyalBlue            = Color{65, 105, 225, 255}
	SaddleBrown          = Color{139, 69, 19, 255}
	Salmon               = Color{250, 128, 114, 255}
	SandyBrown           = Color{244, 164, 96, 255}
	SeaGreen             = Color{46, 139, 87, 255}
	SeaShell             = Color{255, 245, 238, 255}
	Sienna               = Color{160, 82, 45, 255}
	Silver               = Color{192, 192, 192, 255}
	SkyBlue              = Color{135, 206, 235, 255}
	SlateBlue            = Color{106, 90, 205, 255}
	SlateGray            = Color{112, 128, 144, 255}
	SlateGrey            = Color{112, 128, 144, 255}
	Snow                 = Color{255, 250, 250, 255}
	SpringGreen          = Color{0, 255, 127, 255}
	SteelBlue            = Color{70, 130, 180, 255}
	Tan                  = Color{210, 180, 140, 255}
	Teal                 = Color{0, 128, 128, 255}
	Thistle              = Color{216, 191, 216, 255}
	Tomato               = Color{255, 99, 71, 255}
	Turquoise            = Color{64, 224, 208, 255}
	Violet               = Color{238, 130, 238, 255}
	Wheat                = Color{245, 222, 179, 255}
	White                = Color{255, 255, 255, 255}
	WhiteSmoke           = Color{245, 245, 245, 255}
	Yellow               = Color{255, 255, 0, 255}
	YellowGreen          = Color{154, 205, 5, 255}
)

var namedColors = map[string]Color{
	"invisible":            Invisible,
	"transparent":          Invisible,
	"aliceblue":            AliceBlue,
	"antiquewhite":         AntiqueWhite,
	"aqua":                 Aqua,
	"aquamarine":           Aquamarine,
	"azure":                Azure,
	"beige":                Beige,
	"bisque":               Bisque,
	"black":                Black,
	"blanchedalmond":       BlanchedAlmond,
	"blue":                 Blue,
	"blueviolet":           BlueViolet,
	"brown":                Brown,
	"burlywood":            BurlyWood,
	"cadetblue":            CadetBlue,
	"chartreuse":           Chartreuse,
	"chocolate":            Chocolate,
	"coral":                Coral,
	"cornflowerblue":       CornflowerBlue,
	"cornsilk":             Cornsilk,
	"crimson":              Crimson,
	"cyan":                 Cyan,
	"darkblue":             DarkBlue,
	"darkcyan":             DarkCyan,
	"darkgoldenrod":        DarkGoldenRod,
	"darkgray":             DarkGray,
	"darkgreen":            DarkGreen,
	"darkgrey":             DarkGrey,
	"darkkhaki":            DarkKhaki,
	"darkmagenta":          DarkMagenta,
	"darkolivegreen":       DarkOliveGreen,
	"darkorange":           DarkOrange,
	"darkorchid":           DarkOrchid,
	"darkred":              DarkRed,
	"darksalmon":           DarkSalmon,
	"darkseagreen":         DarkSeaGreen,
	"darkslateblue":        DarkSlateBlue,
	"darkslategray":        DarkSlateGray,
	"darkslategrey":        DarkSlateGrey,
	"darkturquoise":        DarkTurquoise,
	"darkviolet":           DarkViolet,
	"deeppink":             DeepPink,
	"deepskyblue":          DeepSkyBlue,
	"dimgray":              DimGray,
	"dimgrey":              DimGrey,
	"dodgerblue":           DodgerBlue,
	"firebrick":            FireBrick,
	"floralwhite":          FloralWhite,
	"forestgreen":          ForestGreen,
	"fuchsia":              Fuchsia,
	"gainsboro":            Gainsboro,
	"ghostwhite":           GhostWhite,
	"gold":                 Gold,
	"goldenrod":            GoldenRod,
	"gray":                 Gray,
	"green":                Green,
	"greenyellow":          GreenYellow,
	"grey":                 Grey,
	"honeydew":             HoneyDew,
	"hotpink":              HotPink,
	"indianred":            IndianRed,
	"indigo":               Indigo,
	"ivory":                Ivory,
	"khaki":                Khaki,
	"lavender":             Lavender,
	"lavenderblush":        LavenderBlush,
	"lawngreen":            LawnGreen,
	"lemonchiffon":         LemonChiffon,
	"lightblue":            LightBlue,
	"lightcoral":           LightCoral,
	"lightcyan":            LightCyan,
	"lightgoldenrodyellow": LightGoldenRodYellow,
	"lightgray":            LightGray,
	"lightgreen":           LightGreen,
	"lightgrey":            LightGrey,
	"lightpink":            LightPink,
	"lightsalmon":          LightSalmon,
	"lightseagreen":        LightSeaGreen,
	"lightskyblue":         LightSkyBlue,
	"lightslategray":       LightSlateGray,
	"lightslategrey":       LightSlateGrey,
	"lightsteelblue":       LightSteelBlue,
	"lightyellow":          LightYellow,
	"lime":                 Lime,
	"limegreen":            LimeGreen,
	"linen":                Linen,
	"magenta":              Magenta,
	"maroon":               Maroon,
	"mediumaquamarine":     MediumAquaMarine,
	"mediumblue":           MediumBlue,
	"mediumorchid":         MediumOrchid,
	"mediumpurple":         MediumPurple,
	"mediumseagreen":       MediumSeaGreen,
	"mediumslateblue":      MediumSlateBlue,
	"mediumspringgreen":    MediumSpringGreen,
	"mediumturquoise":      MediumTurquoise,
	"mediumvioletred":      MediumVioletRed,
	"midnightblue":         MidnightBlue,
	"mintcream":            MintCream,
	"mistyrose":            MistyRose,
	"moccasin":             Moccasin,
	"navajowhite":          NavajoWhite,
	"navy":                 Navy,
	"oldlace":              OldLace,
	"olive":                Olive,
	"olivedrab":            OliveDrab,
	"orange":               Orange,
	"orangered":            OrangeRed,
	"orchid":               Orchid,
	"palegoldenrod":        PaleGoldenRod,
	"palegreen":            PaleGreen,
	"paleturquoise":        PaleTurquoise,
	"palevioletred":        PaleVioletRed,
	"papayawhip":           PapayaWhip,
	"peachpuff":            PeachPuff,
	"peru":                 Peru,
	"pink":                 Pink,
	"plum":                 Plum,
	"powderblue":           PowderBlue,
	"purple":               Purple,
	"rebeccapurple":        RebeccaPurple,
	"red":                  Red,
	"rosybrown":            RosyBrown,
	"royalblue":            RoyalBlue,
	"saddlebrown":          SaddleBrown,
	"salmon":               Salmon,
	"sandybrown":           SandyBrown,
	"seagreen":             SeaGreen,
	"seashell":             SeaShell,
	"sienna":               Sienna,
	"silver":               Silver,
	"skyblue":              SkyBlue,
	"slateblue":            SlateBlue,
	"slategray":            SlateGray,
	"slategrey":            SlateGrey,
	"snow":                 Snow,
	"springgreen":          SpringGreen,
	"steelblue":            SteelBlue,
	"tan":                  Tan,
	"teal":                 Teal,
	"thistle":              Thistle,
	"tomato":               Tomato,
	"turquoise":            Turquoise,
	"violet":               Violet,
	"wheat":                Wheat,
	"white":                White,
	"whitesmoke":           WhiteSmoke,
	"yellow":               Yellow,
	"yellowgreen":          YellowGreen,
}

// NamedColor looks up a color by its CSS keyword. Case, spaces and
// underscores are ignored, so "Dark Orange" and "dark_orange" both resolve.
func NamedColor(name string) (Color, bool) {
	key := strings.Map(func(r rune) rune {
		if r == ' ' || r == '_' || r == '-' {
			return -1
		}
		return r
	}, strings.ToLower(name))
	c, ok := namedColors[key]
	return c, ok
}
