// Package fen decodes position records in Forsyth-Edwards Notation.
package fen

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/kernelchess/rules/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
)

const (
	// Initial is the FEN for the standard starting position.
	Initial = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

// Error reports a malformed FEN record.
type Error struct {
	Fen    string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("malformed fen %q: %v", e.Fen, e.Reason)
}

func fail(fen, reason string) error {
	return &Error{Fen: fen, Reason: reason}
}

// Decode parses a FEN record into a Position. It requires at least the first four
// space-separated fields (piece placement, active color, castling availability,
// en-passant target); trailing halfmove-clock/fullmove-number fields are accepted and
// ignored if present. On any parse failure it returns an *Error and never leaves a
// partially initialized Position observable.
func Decode(record string) (*board.Position, error) {
	parts := strings.Fields(strings.TrimSpace(record))
	if len(parts) < 4 {
		return nil, fail(record, fmt.Sprintf("expected at least 4 fields, got %v", len(parts)))
	}

	pieces, err := decodePlacement(parts[0])
	if err != nil {
		return nil, fail(record, err.Error())
	}

	active, ok := parseColor(parts[1])
	if !ok {
		return nil, fail(record, fmt.Sprintf("invalid active color: %q", parts[1]))
	}

	castling, ok := parseCastling(parts[2])
	if !ok {
		return nil, fail(record, fmt.Sprintf("invalid castling availability: %q", parts[2]))
	}

	var epFile lang.Optional[board.File]
	if parts[3] != "-" {
		sq, err := board.ParseSquareStr(parts[3])
		if err != nil {
			return nil, fail(record, fmt.Sprintf("invalid en passant target: %q", parts[3]))
		}
		epFile = lang.Some(sq.File)
	}

	pos, err := board.NewPosition(pieces, active, castling, epFile)
	if err != nil {
		return nil, fail(record, err.Error())
	}
	return pos, nil
}

func decodePlacement(field string) ([]board.Placement, error) {
	var pieces []board.Placement

	ranks := strings.Split(field, "/")
	if len(ranks) != int(board.NumRanks) {
		return nil, fmt.Errorf("expected %v ranks, got %v", board.NumRanks, len(ranks))
	}

	for i, rankField := range ranks {
		r := board.Rank(int(board.NumRanks) - 1 - i) // FEN lists rank 8 first.
		f := board.ZeroFile

		for _, ru := range rankField {
			switch {
			case unicode.IsDigit(ru):
				f += board.File(ru - '0')
			case unicode.IsLetter(ru):
				if f >= board.NumFiles {
					return nil, fmt.Errorf("too many files in rank %v", i+1)
				}
				color, piece, ok := parsePiece(ru)
				if !ok {
					return nil, fmt.Errorf("invalid piece %q", string(ru))
				}
				pieces = append(pieces, board.Placement{
					Square: board.NewSquare(r, f),
					Color:  color,
					Piece:  piece,
				})
				f++
			default:
				return nil, fmt.Errorf("invalid character %q in placement", string(ru))
			}
		}
		if f != board.NumFiles {
			return nil, fmt.Errorf("wrong number of squares in rank %v", i+1)
		}
	}
	return pieces, nil
}

func parseColor(s string) (board.Color, bool) {
	switch s {
	case "w":
		return board.White, true
	case "b":
		return board.Black, true
	default:
		return 0, false
	}
}

func parseCastling(s string) (board.Castling, bool) {
	var c board.Castling
	if s == "-" {
		return c, true
	}
	for _, r := range s {
		switch r {
		case 'K':
			c |= board.WhiteKingSideCastle
		case 'Q':
			c |= board.WhiteQueenSideCastle
		case 'k':
			c |= board.BlackKingSideCastle
		case 'q':
			c |= board.BlackQueenSideCastle
		default:
			return 0, false
		}
	}
	return c, true
}

func parsePiece(r rune) (board.Color, board.Piece, bool) {
	color := board.White
	if unicode.IsLower(r) {
		color = board.Black
	}
	piece, ok := board.ParsePiece(r)
	return color, piece, ok
}
