// File: render.go
// Role: ASCII rendering of a city grid for console reporting.
package city

import "strings"

// renderMaxRows caps ASCII output; larger grids are unreadable in a console.
const renderMaxRows = 50

// Cell glyphs for the ASCII rendering legend.
const (
	glyphResidence = 'R'
	glyphBusiness  = 'B'
	glyphBlockage  = '+'
	glyphWalkway   = ' '
	glyphMarked    = '*'
)

// Legend describes the glyphs used by Render.
const Legend = "Legend\n" +
	"R - Residence\n" +
	"B - Business\n" +
	"+ - Blockage\n" +
	"  - Walkway\n" +
	"* - Marked location"

// Render draws the grid as ASCII lanes, one row per line. Cells whose
// location appears in marked are drawn with '*' regardless of type, which
// highlights discovered hot spots. Grids taller than 50 rows return "".
// Complexity: O(rows×cols).
func (g *Grid) Render(marked ...GeoLocation) string {
	if len(g.cells) > renderMaxRows {
		return ""
	}
	markedSet := make(map[GeoLocation]struct{}, len(marked))
	for _, loc := range marked {
		markedSet[loc] = struct{}{}
	}

	var b strings.Builder
	for _, row := range g.cells {
		b.WriteString("| ")
		for _, c := range row {
			b.WriteByte(byte(glyphFor(c, markedSet)))
			b.WriteString("    | ")
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// glyphFor selects the display glyph for one cell.
func glyphFor(c Cell, marked map[GeoLocation]struct{}) rune {
	if _, ok := marked[c.Location]; ok {
		return glyphMarked
	}
	switch c.Type {
	case Residence:
		return glyphResidence
	case Business:
		return glyphBusiness
	case Blockage:
		return glyphBlockage
	default:
		return glyphWalkway
	}
}
