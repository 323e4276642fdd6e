package ttt

// Transform maps every destination cell to the source cell it is copied from
type Transform [9]PosType

// The 8 symmetries of the square grid (dihedral group D4), the first one is the identity
var Transforms = [8]Transform{
	{0, 1, 2, 3, 4, 5, 6, 7, 8}, // identity
	{6, 3, 0, 7, 4, 1, 8, 5, 2}, // rotate 90 clockwise
	{8, 7, 6, 5, 4, 3, 2, 1, 0}, // rotate 180
	{2, 5, 8, 1, 4, 7, 0, 3, 6}, // rotate 270 clockwise
	{2, 1, 0, 5, 4, 3, 8, 7, 6}, // mirror left-right
	{6, 7, 8, 3, 4, 5, 0, 1, 2}, // mirror top-bottom
	{0, 3, 6, 1, 4, 7, 2, 5, 8}, // main diagonal
	{8, 5, 2, 7, 4, 1, 6, 3, 0}, // anti diagonal
}

func (b Board) Transform(t Transform) Board {
	var out Board
	for dst, src := range t {
		out[dst] = b[src]
	}
	return out
}

// All 8 images of the board, some may repeat for symmetric boards
func (b Board) Symmetries() [8]Board {
	var out [8]Board
	for i, t := range Transforms {
		out[i] = b.Transform(t)
	}
	return out
}
