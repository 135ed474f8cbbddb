package core

// Color identifies the palette entry a screen cell is drawn with.
// The terminal layer maps each entry to a concrete style.
type Color uint8

// Palette entries for canvas tiles and overlays.
const (
	ColorDefault Color = iota
	ColorEmpty         // no block
	ColorStone         // spawnable surface
	ColorBrick         // pre-blocked surface
	ColorWood          // trapdoor
	ColorWool          // carpet
	ColorPreview       // live rectangle/circle overlay
	ColorCursor        // cell under the pointer
	ColorDim           // status and help text
	ColorAccent        // mode indicator
)
