package board

import "strings"

// pieceLetter returns the uppercase SAN letter for a non-pawn piece.
func pieceLetter(p Piece) string {
	switch p {
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// RenderSAN renders a legal, annotated Move to Standard Algebraic Notation. As a
// deliberate simplification, non-pawn, non-king pieces and pawns always carry their
// full source square rather than the minimal SAN disambiguation -- every move is
// unambiguous this way, at the cost of not being byte-for-byte standard SAN.
func RenderSAN(m Move) string {
	var sb strings.Builder

	switch {
	case m.IsKingSideCastle():
		sb.WriteString("O-O")
	case m.IsQueenSideCastle():
		sb.WriteString("O-O-O")
	case m.Piece == Pawn:
		sb.WriteString(m.From.String())
		if m.IsCapture() {
			sb.WriteString("x")
		}
		sb.WriteString(m.To.String())
		if promo, ok := m.Promotion.V(); ok {
			sb.WriteString("=")
			sb.WriteString(pieceLetter(promo))
		}
		if m.EnPassant {
			sb.WriteString("e.p.")
		}
	case m.Piece == King:
		sb.WriteString("K")
		if m.IsCapture() {
			sb.WriteString("x")
		}
		sb.WriteString(m.To.String())
	default:
		sb.WriteString(pieceLetter(m.Piece))
		sb.WriteString(m.From.String())
		if m.IsCapture() {
			sb.WriteString("x")
		}
		sb.WriteString(m.To.String())
	}

	switch {
	case m.IsMate:
		sb.WriteString("#")
	case m.IsCheck:
		sb.WriteString("+")
	}

	return sb.String()
}
