package render

// Fade blends a hex color toward black by alpha in [0,1].
func Fade(hex string, alpha float64) string {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	r, g, b := ParseHex(hex)
	return HexColor(int(float64(r)*alpha), int(float64(g)*alpha), int(float64(b)*alpha))
}

// Lerp interpolates between two hex colors.
func Lerp(from, to string, t float64) string {
	sr, sg, sb := ParseHex(from)
	er, eg, eb := ParseHex(to)
	return HexColor(
		int(float64(sr)+t*float64(er-sr)),
		int(float64(sg)+t*float64(eg-sg)),
		int(float64(sb)+t*float64(eb-sb)),
	)
}

// ParseHex reads #rrggbb; anything else is white.
func ParseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	return parseHexByte(hex[1:3]), parseHexByte(hex[3:5]), parseHexByte(hex[5:7])
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func HexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
