package encode

import "github.com/signadot/bbdb/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}

// EncodeWire selects compact output: single line JSON.  It has no effect
// on other formats.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}
