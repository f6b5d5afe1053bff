package fen_test

import (
	"testing"

	"github.com/kernelchess/rules/pkg/board"
	"github.com/kernelchess/rules/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		fen    string
		turn   board.Color
		rights board.Castling
		ep     bool
	}{
		{fen.Initial, board.White, board.FullCastingRights, false},
		{"4k3/2pppp2/8/4P1K1/4PP2/3P4/8/8 w - - 0 1", board.White, 0, false},
		{"rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR w KQkq - 0 1", board.White, board.FullCastingRights, false},
		{"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6", board.White, board.FullCastingRights, true},
		// No trailing halfmove/fullmove fields: those are optional and still decode.
		{"8/8/8/8/8/8/8/4K2k w - -", board.White, 0, false},
	}

	for _, tt := range tests {
		p, err := fen.Decode(tt.fen)
		require.NoError(t, err, tt.fen)

		assert.Equal(t, tt.turn, p.SideToMove())
		assert.Equal(t, tt.rights, p.Castling())

		_, ok := p.EnPassantFile()
		assert.Equal(t, tt.ep, ok)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN9 w KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBZR w KQkq -",
		"8/8/8/8/8/8/8/4K3 w - -",  // missing Black king
		"8/8/8/8/8/8/8/4KK1k w - -", // two White kings, still only one Black
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq -",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9",
	}

	for _, tt := range tests {
		_, err := fen.Decode(tt)
		require.Error(t, err, tt)

		var fe *fen.Error
		assert.ErrorAs(t, err, &fe, tt)
	}
}
