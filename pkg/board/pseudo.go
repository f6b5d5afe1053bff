package board

import "github.com/seekerror/stdlib/pkg/lang"

// promotionKinds is the fixed emission order for the four legal promotion choices.
var promotionKinds = []Piece{Queen, Rook, Bishop, Knight}

// pawnAdvance returns the forward rank step for a pawn of the given color.
func pawnAdvance(c Color) int {
	if c == White {
		return 1
	}
	return -1
}

func pawnHomeRank(c Color) Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

func isBackRank(r Rank) bool {
	return r == Rank1 || r == Rank8
}

// PseudoLegalMoves enumerates every geometrically legal destination for side, ignoring
// whether the move leaves the mover's own king attacked. Castling moves still enforce
// the "king not currently in check" and "does not pass through an attacked square"
// conditions explicitly, since the self-check filter alone would miss the intermediate
// square.
func (p *Position) PseudoLegalMoves(side Color) []Move {
	var out []Move
	for r := ZeroRank; r < NumRanks; r++ {
		for f := ZeroFile; f < NumFiles; f++ {
			o := p.squares[r][f]
			if o.Piece == NoPiece || o.Color != side {
				continue
			}
			sq := NewSquare(r, f)
			switch o.Piece {
			case Pawn:
				p.genPawnMoves(sq, side, &out)
			case Knight:
				p.genStepMoves(sq, side, Knight, knightOffsets, &out)
			case Bishop:
				p.genSliderMoves(sq, side, Bishop, diagonalDirs, &out)
			case Rook:
				p.genSliderMoves(sq, side, Rook, orthogonalDirs, &out)
			case Queen:
				p.genSliderMoves(sq, side, Queen, allDirs, &out)
			case King:
				p.genStepMoves(sq, side, King, kingOffsets, &out)
				p.genCastlingMoves(sq, side, &out)
			}
		}
	}
	return out
}

func (p *Position) genPawnMoves(from Square, side Color, out *[]Move) {
	ahead := pawnAdvance(side)

	// Forward one and two.
	if r := int(from.Rank) + ahead; onBoard(r, int(from.File)) {
		to := NewSquare(Rank(r), from.File)
		if p.IsEmpty(to) {
			emitPawnMove(out, side, from, to, lang.Optional[Piece]{})

			if from.Rank == pawnHomeRank(side) {
				if r2 := int(from.Rank) + 2*ahead; onBoard(r2, int(from.File)) {
					to2 := NewSquare(Rank(r2), from.File)
					if p.IsEmpty(to2) {
						emitPawnMove(out, side, from, to2, lang.Optional[Piece]{})
					}
				}
			}
		}
	}

	// Diagonal captures and en passant.
	for _, df := range [2]int{-1, 1} {
		nf := int(from.File) + df
		nr := int(from.Rank) + ahead
		if !onBoard(nr, nf) {
			continue
		}
		to := NewSquare(Rank(nr), File(nf))
		target := p.squares[to.Rank][to.File]

		if target.Piece != NoPiece {
			if target.Color != side && target.Piece != King {
				emitPawnMove(out, side, from, to, lang.Some(target.Piece))
			}
			continue
		}

		if epf, ok := p.epFile.V(); ok && int(epf) == nf {
			adj := p.squares[from.Rank][nf]
			if adj.Piece == Pawn && adj.Color != side {
				*out = append(*out, Move{
					Piece:     Pawn,
					Mover:     side,
					From:      from,
					To:        to,
					Capture:   lang.Some(Pawn),
					EnPassant: true,
				})
			}
		}
	}
}

func emitPawnMove(out *[]Move, side Color, from, to Square, capture lang.Optional[Piece]) {
	if isBackRank(to.Rank) {
		for _, promo := range promotionKinds {
			*out = append(*out, Move{
				Piece: Pawn, Mover: side, From: from, To: to,
				Capture: capture, Promotion: lang.Some(promo),
			})
		}
		return
	}
	*out = append(*out, Move{Piece: Pawn, Mover: side, From: from, To: to, Capture: capture})
}

// genStepMoves generates single-step moves (knight, king) over the given offsets.
func (p *Position) genStepMoves(from Square, side Color, piece Piece, offsets []direction, out *[]Move) {
	for _, d := range offsets {
		r, f := int(from.Rank)+d.dr, int(from.File)+d.df
		if !onBoard(r, f) {
			continue
		}
		to := NewSquare(Rank(r), File(f))
		target := p.squares[to.Rank][to.File]

		if target.Piece == NoPiece {
			*out = append(*out, Move{Piece: piece, Mover: side, From: from, To: to})
			continue
		}
		if target.Color != side && target.Piece != King {
			*out = append(*out, Move{Piece: piece, Mover: side, From: from, To: to, Capture: lang.Some(target.Piece)})
		}
	}
}

// genSliderMoves generates ray moves (bishop, rook, queen) over the given directions.
func (p *Position) genSliderMoves(from Square, side Color, piece Piece, dirs []direction, out *[]Move) {
	for _, d := range dirs {
		r, f := int(from.Rank)+d.dr, int(from.File)+d.df
		for onBoard(r, f) {
			to := NewSquare(Rank(r), File(f))
			target := p.squares[to.Rank][to.File]

			if target.Piece == NoPiece {
				*out = append(*out, Move{Piece: piece, Mover: side, From: from, To: to})
				r += d.dr
				f += d.df
				continue
			}
			if target.Color != side && target.Piece != King {
				*out = append(*out, Move{Piece: piece, Mover: side, From: from, To: to, Capture: lang.Some(target.Piece)})
			}
			break
		}
	}
}

// castleInfo encodes one castling option as data, rather than duplicating the
// branching logic per side per direction.
type castleInfo struct {
	right            Castling
	kingFrom, kingTo Square
	rookFrom, rookTo Square
	empties          []Square
	safe             []Square // origin and pass-through squares that must not be attacked
}

func castleOptions(c Color) []castleInfo {
	rank := Rank1
	if c == Black {
		rank = Rank8
	}
	e, f, g, h := NewSquare(rank, FileE), NewSquare(rank, FileF), NewSquare(rank, FileG), NewSquare(rank, FileH)
	d, cSq, b, a := NewSquare(rank, FileD), NewSquare(rank, FileC), NewSquare(rank, FileB), NewSquare(rank, FileA)

	return []castleInfo{
		{
			right:    KingSide(c),
			kingFrom: e, kingTo: g,
			rookFrom: h, rookTo: f,
			empties: []Square{f, g},
			safe:    []Square{e, f},
		},
		{
			right:    QueenSide(c),
			kingFrom: e, kingTo: cSq,
			rookFrom: a, rookTo: d,
			empties: []Square{b, cSq, d},
			safe:    []Square{e, d},
		},
	}
}

func (p *Position) genCastlingMoves(kingSq Square, side Color, out *[]Move) {
	enemy := side.Opponent()
	for _, opt := range castleOptions(side) {
		if !p.castling.IsAllowed(opt.right) {
			continue
		}
		if kingSq != opt.kingFrom {
			continue
		}
		blocked := false
		for _, sq := range opt.empties {
			if !p.IsEmpty(sq) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		safe := true
		for _, sq := range opt.safe {
			if p.IsAttacked(sq, enemy) {
				safe = false
				break
			}
		}
		if !safe {
			continue
		}
		*out = append(*out, Move{Piece: King, Mover: side, From: opt.kingFrom, To: opt.kingTo})
	}
}
