package life

// Pattern is a named set of cell offsets relative to an anchor position.
type Pattern struct {
	Name    string
	Offsets [][2]int32
}

// Built-in patterns. Offsets use x right, y down.
var (
	Block = Pattern{Name: "block", Offsets: [][2]int32{
		{0, 0}, {1, 0}, {0, 1}, {1, 1},
	}}
	Blinker = Pattern{Name: "blinker", Offsets: [][2]int32{
		{-1, 0}, {0, 0}, {1, 0},
	}}
	Glider = Pattern{Name: "glider", Offsets: [][2]int32{
		{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2},
	}}
	Toad = Pattern{Name: "toad", Offsets: [][2]int32{
		{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1},
	}}
	Beacon = Pattern{Name: "beacon", Offsets: [][2]int32{
		{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3},
	}}
	Tromino = Pattern{Name: "tromino", Offsets: [][2]int32{
		{0, 0}, {1, 0}, {0, 1},
	}}
	RPentomino = Pattern{Name: "r-pentomino", Offsets: [][2]int32{
		{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2},
	}}
)

var patterns = map[string]Pattern{
	Block.Name:      Block,
	Blinker.Name:    Blinker,
	Glider.Name:     Glider,
	Toad.Name:       Toad,
	Beacon.Name:     Beacon,
	Tromino.Name:    Tromino,
	RPentomino.Name: RPentomino,
}

// PatternByName looks up a built-in pattern.
func PatternByName(name string) (Pattern, bool) {
	p, ok := patterns[name]
	return p, ok
}

// PatternNames lists the built-in pattern names in map order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	return names
}

// Place seeds the pattern's cells relative to the anchor. Occupied and
// out-of-bounds positions are skipped so overlapping seeds stay defensive.
// It returns the number of cells actually created.
func (p Pattern) Place(e *Engine, x, y int32) int {
	placed := 0
	for _, off := range p.Offsets {
		if err := e.CreateCell(x+off[0], y+off[1]); err == nil {
			placed++
		}
	}
	return placed
}
