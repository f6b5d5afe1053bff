package board

// LegalMoves returns every legal move for the side to move, annotated with IsCheck and
// IsMate. The position is borrowed for the duration of the call: each candidate is
// applied to a scratch state and undone before LegalMoves returns.
func (p *Position) LegalMoves() []Move {
	return p.legalMovesFor(p.sideToMove, true)
}

// legalMovesFor is the legality filter, reused internally (with annotate=false) to
// count the opponent's replies when testing for mate. Recursion bottoms out there:
// an annotate=false call never itself asks for IsCheck/IsMate, so depth is bounded at 2.
func (p *Position) legalMovesFor(side Color, annotate bool) []Move {
	var out []Move
	for _, m := range p.PseudoLegalMoves(side) {
		p.Apply(m)

		if p.IsAttacked(p.KingSquare(side), side.Opponent()) {
			p.Undo(m)
			continue
		}

		if annotate {
			opp := side.Opponent()
			m.IsCheck = p.IsAttacked(p.KingSquare(opp), side)
			if m.IsCheck {
				m.IsMate = len(p.legalMovesFor(opp, false)) == 0
			}
		}

		p.Undo(m)
		out = append(out, m)
	}
	return out
}
