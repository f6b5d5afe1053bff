package board_test

import (
	"testing"

	"github.com/kernelchess/rules/pkg/board"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
)

func TestRenderSAN(t *testing.T) {
	tests := []struct {
		name string
		m    board.Move
		want string
	}{
		{
			"quiet knight move",
			board.Move{Piece: board.Knight, From: sq(board.FileG, board.Rank1), To: sq(board.FileF, board.Rank3)},
			"Ng1f3",
		},
		{
			"capture",
			board.Move{Piece: board.Bishop, From: sq(board.FileC, board.Rank4), To: sq(board.FileF, board.Rank7), Capture: lang.Some(board.Pawn)},
			"Bc4xf7",
		},
		{
			"pawn push",
			board.Move{Piece: board.Pawn, From: sq(board.FileE, board.Rank2), To: sq(board.FileE, board.Rank4)},
			"e2e4",
		},
		{
			"pawn capture",
			board.Move{Piece: board.Pawn, From: sq(board.FileE, board.Rank4), To: sq(board.FileD, board.Rank5), Capture: lang.Some(board.Knight)},
			"e4xd5",
		},
		{
			"en passant",
			board.Move{Piece: board.Pawn, From: sq(board.FileE, board.Rank5), To: sq(board.FileD, board.Rank6), Capture: lang.Some(board.Pawn), EnPassant: true},
			"e5xd6e.p.",
		},
		{
			"promotion",
			board.Move{Piece: board.Pawn, From: sq(board.FileD, board.Rank7), To: sq(board.FileD, board.Rank8), Promotion: lang.Some(board.Queen)},
			"d7d8=Q",
		},
		{
			"king side castle",
			board.Move{Piece: board.King, From: sq(board.FileE, board.Rank1), To: sq(board.FileG, board.Rank1)},
			"O-O",
		},
		{
			"queen side castle",
			board.Move{Piece: board.King, From: sq(board.FileE, board.Rank1), To: sq(board.FileC, board.Rank1)},
			"O-O-O",
		},
		{
			"check suffix",
			board.Move{Piece: board.Rook, From: sq(board.FileA, board.Rank1), To: sq(board.FileA, board.Rank8), IsCheck: true},
			"Ra1a8+",
		},
		{
			"mate suffix overrides check suffix",
			board.Move{Piece: board.Rook, From: sq(board.FileA, board.Rank1), To: sq(board.FileA, board.Rank8), IsCheck: true, IsMate: true},
			"Ra1a8#",
		},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, board.RenderSAN(tt.m), tt.name)
	}
}
