package board

import (
	"fmt"

	"github.com/seekerror/stdlib/pkg/lang"
)

// Move represents a move along with the metadata the generator, legality filter, and
// notation renderer need. A freshly generated Move is only pseudo-legal; IsCheck and
// IsMate are populated by the legality filter and are meaningless before that.
type Move struct {
	// Piece is the kind of the piece that moves. Mover is its color.
	Piece Piece
	Mover Color

	From, To Square

	// Capture is the captured piece kind, if any. En passant captures a Pawn that is
	// not standing on To.
	Capture lang.Optional[Piece]
	// Promotion is the piece the pawn becomes, if any. Only set when Piece == Pawn and
	// To is on the last rank for Mover (rank 8 for White, rank 1 for Black).
	Promotion lang.Optional[Piece]
	// EnPassant is true iff this is an en passant capture: implies Piece == Pawn and
	// Capture holds Pawn.
	EnPassant bool

	// IsCheck and IsMate describe the position after the move is applied. Set only by
	// the legality filter, never by the raw pseudo-legal generator.
	IsCheck bool
	IsMate  bool
}

// IsCapture returns true iff the move captures a piece (en passant included).
func (m Move) IsCapture() bool {
	_, ok := m.Capture.V()
	return ok
}

// IsPromotion returns true iff the move promotes a pawn.
func (m Move) IsPromotion() bool {
	_, ok := m.Promotion.V()
	return ok
}

// IsCastle returns true iff the move is a castling king move: a king moving two files.
func (m Move) IsCastle() bool {
	return m.Piece == King && fileDelta(m.From.File, m.To.File) == 2
}

// IsKingSideCastle returns true iff the move castles toward the h-file.
func (m Move) IsKingSideCastle() bool {
	return m.IsCastle() && m.To.File > m.From.File
}

// IsQueenSideCastle returns true iff the move castles toward the a-file.
func (m Move) IsQueenSideCastle() bool {
	return m.IsCastle() && m.To.File < m.From.File
}

// Equals reports whether two moves agree on origin, destination and promotion choice
// -- the fields that disambiguate a move in pure coordinate notation.
func (m Move) Equals(o Move) bool {
	mp, mok := m.Promotion.V()
	op, ook := o.Promotion.V()
	return m.From == o.From && m.To == o.To && mok == ook && mp == op
}

// ParseMove parses a move in pure algebraic coordinate notation, such as "e2e4" or
// "a7a8q". The result carries only From/To/Promotion; match it against a LegalMoves
// list with Equals to recover the full, annotated Move.
func ParseMove(str string) (Move, error) {
	runes := []rune(str)

	if len(runes) < 4 || len(runes) > 5 {
		return Move{}, fmt.Errorf("invalid move: '%v'", str)
	}

	from, err := ParseSquare(runes[0], runes[1])
	if err != nil {
		return Move{}, fmt.Errorf("invalid from square: '%v': %w", str, err)
	}
	to, err := ParseSquare(runes[2], runes[3])
	if err != nil {
		return Move{}, fmt.Errorf("invalid to square: '%v': %w", str, err)
	}

	if len(runes) == 5 {
		promo, ok := ParsePiece(runes[4])
		if !ok || promo == Pawn || promo == King {
			return Move{}, fmt.Errorf("invalid promotion: '%v'", str)
		}
		return Move{From: from, To: to, Promotion: lang.Some(promo)}, nil
	}
	return Move{From: from, To: to}, nil
}

func (m Move) String() string {
	if promo, ok := m.Promotion.V(); ok {
		return fmt.Sprintf("%v%v%v", m.From, m.To, promo)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}

func fileDelta(a, b File) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}

func rankDelta(a, b Rank) int {
	d := int(a) - int(b)
	if d < 0 {
		d = -d
	}
	return d
}
