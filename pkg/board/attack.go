package board

// direction is a unit step (Δrank, Δfile) used both by the attack oracle's ray walk
// and by the slider move generator.
type direction struct {
	dr, df int
}

var (
	orthogonalDirs = []direction{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs   = []direction{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDirs        = append(append([]direction{}, orthogonalDirs...), diagonalDirs...)

	knightOffsets = []direction{
		{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
		{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	}
	kingOffsets = allDirs
)

func (d direction) isOrthogonal() bool {
	return d.dr == 0 || d.df == 0
}

func (d direction) isDiagonal() bool {
	return d.dr != 0 && d.df != 0
}

func onBoard(r, f int) bool {
	return r >= 0 && r < int(NumRanks) && f >= 0 && f < int(NumFiles)
}

// IsAttacked reports whether sq is attacked by the given side, independent of whose
// turn it is and without mutating the position.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	for _, d := range allDirs {
		r, f := int(sq.Rank)+d.dr, int(sq.File)+d.df
		steps := 0
		for onBoard(r, f) {
			steps++
			o := p.squares[r][f]
			if o.Piece == NoPiece {
				r += d.dr
				f += d.df
				continue
			}
			if o.Color == by {
				switch o.Piece {
				case Queen:
					return true
				case Rook:
					if d.isOrthogonal() {
						return true
					}
				case Bishop:
					if d.isDiagonal() {
						return true
					}
				case King:
					if steps == 1 {
						return true
					}
				case Pawn:
					if steps == 1 && d.isDiagonal() && pawnAttacksFromRankDelta(by, d.dr) {
						return true
					}
				}
			}
			break // blocked, friendly or enemy: ray goes no further
		}
	}

	for _, d := range knightOffsets {
		r, f := int(sq.Rank)+d.dr, int(sq.File)+d.df
		if !onBoard(r, f) {
			continue
		}
		o := p.squares[r][f]
		if o.Piece == Knight && o.Color == by {
			return true
		}
	}
	return false
}

// pawnAttacksFromRankDelta reports whether, having found a pawn of color by at rank
// offset dr along a diagonal ray from the target square, that pawn actually attacks
// the target. A White pawn attacks one rank ahead of itself, so walking outward from
// the target to the pawn moves one rank *behind* the pawn's own advance: dr == -1.
// Symmetrically, a Black pawn attacker is found at dr == +1.
func pawnAttacksFromRankDelta(by Color, dr int) bool {
	if by == White {
		return dr == -1
	}
	return dr == 1
}
