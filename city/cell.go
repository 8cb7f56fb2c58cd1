package city

import "fmt"

// CellType classifies a grid cell into exactly one of four categories.
type CellType int

const (
	// Residence cells are pedestrian trip origins.
	Residence CellType = iota
	// Business cells are pedestrian trip destinations.
	Business
	// Blockage cells are impassable and excluded from the traversable view.
	Blockage
	// Walkway cells are open ground, usable as both origin and destination.
	Walkway
)

// cellTypeNames indexes String() output by CellType value.
var cellTypeNames = [...]string{
	Residence: "residence",
	Business:  "business",
	Blockage:  "blockage",
	Walkway:   "walkway",
}

// String returns the lowercase category name, or "celltype(N)" for values
// outside the enumeration.
func (t CellType) String() string {
	if t < 0 || int(t) >= len(cellTypeNames) {
		return fmt.Sprintf("celltype(%d)", int(t))
	}

	return cellTypeNames[t]
}

// Cell is one unit of the city grid: a location plus its category.
// Cell is a comparable value type; equality and map keying work over both
// fields. Cells are created once at generation time and never mutated.
type Cell struct {
	Location GeoLocation
	Type     CellType
}

// IsResidence reports whether the cell is a Residence.
func (c Cell) IsResidence() bool { return c.Type == Residence }

// IsBusiness reports whether the cell is a Business.
func (c Cell) IsBusiness() bool { return c.Type == Business }

// IsWalkway reports whether the cell is a Walkway.
func (c Cell) IsWalkway() bool { return c.Type == Walkway }

// IsBlocked reports whether the cell is a Blockage.
func (c Cell) IsBlocked() bool { return c.Type == Blockage }

// ID returns the cell's graph vertex identifier (its location ID).
func (c Cell) ID() string { return c.Location.ID() }

// String renders the cell as "category, (lat, lon)".
func (c Cell) String() string {
	return fmt.Sprintf("%s, %s", c.Type, c.Location)
}
