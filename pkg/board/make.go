package board

import "github.com/seekerror/stdlib/pkg/lang"

var corners = [4]struct {
	sq    Square
	right Castling
}{
	{NewSquare(Rank1, FileH), WhiteKingSideCastle},
	{NewSquare(Rank1, FileA), WhiteQueenSideCastle},
	{NewSquare(Rank8, FileH), BlackKingSideCastle},
	{NewSquare(Rank8, FileA), BlackQueenSideCastle},
}

func (p *Position) snapshot() undoFrame {
	return undoFrame{
		squares:    p.squares,
		sideToMove: p.sideToMove,
		castling:   p.castling,
		epFile:     p.epFile,
		whiteKing:  p.whiteKing,
		blackKing:  p.blackKing,
		result:     p.result,
	}
}

func (p *Position) restore(f undoFrame) {
	p.squares = f.squares
	p.sideToMove = f.sideToMove
	p.castling = f.castling
	p.epFile = f.epFile
	p.whiteKing = f.whiteKing
	p.blackKing = f.blackKing
	p.result = f.result
}

// Apply mutates the position by m. m must be a move produced by LegalMoves(p) (or at
// least PseudoLegalMoves(p.SideToMove())); Apply performs no legality check of its own.
// The move is pushed onto a bounded undo stack so that a matching Undo restores the
// position bit-exactly.
func (p *Position) Apply(m Move) {
	if len(p.undo) >= maxUndoDepth {
		invariantViolation("undo stack exhausted (depth %v)", maxUndoDepth)
	}
	p.undo = append(p.undo, p.snapshot())

	mover := m.Mover

	// A capture landing on an original rook corner revokes that corner's right even
	// when the mover isn't the side owning it: the right only makes sense while the
	// rook is still sitting on its original square.
	for _, c := range corners {
		if m.To == c.sq {
			p.castling = p.castling.Clear(c.right)
		}
	}

	switch m.Piece {
	case King:
		if mover == White {
			p.whiteKing = m.To
		} else {
			p.blackKing = m.To
		}
		p.castling = p.castling.Clear(Both(mover))

		if m.IsCastle() {
			for _, opt := range castleOptions(mover) {
				if opt.kingFrom == m.From && opt.kingTo == m.To {
					rook := p.squares[opt.rookFrom.Rank][opt.rookFrom.File]
					p.squares[opt.rookFrom.Rank][opt.rookFrom.File] = occupant{}
					p.squares[opt.rookTo.Rank][opt.rookTo.File] = rook
					break
				}
			}
		}

	case Rook:
		if m.From == h1Rook(mover) {
			p.castling = p.castling.Clear(KingSide(mover))
		} else if m.From == a1Rook(mover) {
			p.castling = p.castling.Clear(QueenSide(mover))
		}
	}

	if m.EnPassant {
		capSq := NewSquare(m.From.Rank, m.To.File)
		p.squares[capSq.Rank][capSq.File] = occupant{}
	}

	moving := p.squares[m.From.Rank][m.From.File]
	p.squares[m.From.Rank][m.From.File] = occupant{}
	if promo, ok := m.Promotion.V(); ok {
		moving.Piece = promo
	}
	p.squares[m.To.Rank][m.To.File] = moving

	p.epFile = lang.Optional[File]{}
	if m.Piece == Pawn && rankDelta(m.From.Rank, m.To.Rank) == 2 {
		p.epFile = lang.Some(m.To.File)
	}

	p.sideToMove = mover.Opponent()

	if m.IsMate {
		p.result = Won(mover)
	}
}

// Undo reverses the most recent Apply by restoring the snapshot on top of the undo
// stack; m itself is not inspected. It panics if there is nothing to undo -- an internal
// invariant violation, never reachable from correctly paired Apply/Undo calls.
func (p *Position) Undo(m Move) {
	if len(p.undo) == 0 {
		invariantViolation("undo called with empty stack")
	}
	top := p.undo[len(p.undo)-1]
	p.undo = p.undo[:len(p.undo)-1]
	p.restore(top)
}

// ApplyChecked applies m only if it is a member of LegalMoves(p); otherwise it leaves
// p unchanged and returns an *IllegalMoveError.
func (p *Position) ApplyChecked(m Move) error {
	for _, legal := range p.LegalMoves() {
		if legal.Equals(m) {
			p.Apply(legal)
			return nil
		}
	}
	return &IllegalMoveError{Move: m}
}
