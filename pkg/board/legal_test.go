package board_test

import (
	"testing"

	"github.com/kernelchess/rules/pkg/board"
	"github.com/kernelchess/rules/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalMovesStartingPosition(t *testing.T) {
	p, err := fen.Decode(fen.Initial)
	require.NoError(t, err)

	moves := p.LegalMoves()
	assert.Len(t, moves, 20)
}

func TestLegalMovesMateInOne(t *testing.T) {
	p, err := fen.Decode("1B1Q1Q2/2R5/pQ4QN/RB2k3/1Q5Q/N4Q2/K2Q4/6Q1 w - -")
	require.NoError(t, err)

	moves := p.LegalMoves()

	var mates int
	for _, m := range moves {
		if m.IsMate {
			mates++
		}
	}
	assert.Equal(t, 105, mates)
}

func TestLegalMovesMaximum(t *testing.T) {
	p, err := fen.Decode("R6R/3Q4/1Q4Q1/4Q3/2Q4Q/Q4Q2/pp1Q4/kBNN1KB1 w - -")
	require.NoError(t, err)

	moves := p.LegalMoves()
	assert.Len(t, moves, 218)
}

func TestLegalMovesPinnedKnight(t *testing.T) {
	p, err := fen.Decode("rnbqk1nr/pppp1ppp/8/4p3/1b1P4/2N5/PPP1PPPP/R1BQKBNR w KQkq - 2 3")
	require.NoError(t, err)

	moves := p.LegalMoves()

	c3 := board.NewSquare(board.Rank3, board.FileC)
	e5 := board.NewSquare(board.Rank5, board.FileE)

	for _, m := range moves {
		assert.NotEqual(t, c3, m.From, "pinned knight should have no legal moves")
		if m.From == c3 {
			assert.NotEqual(t, e5, m.To)
		}
	}
}

func TestLegalMovesEnPassantLeft(t *testing.T) {
	p, err := fen.Decode("rnbqkbnr/ppp1ppp1/7p/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	moves := p.LegalMoves()

	e5 := board.NewSquare(board.Rank5, board.FileE)
	d6 := board.NewSquare(board.Rank6, board.FileD)

	var found bool
	for _, m := range moves {
		if m.From == e5 && m.To == d6 {
			found = true
			assert.True(t, m.EnPassant)
			capture, ok := m.Capture.V()
			require.True(t, ok)
			assert.Equal(t, board.Pawn, capture)
		}
	}
	assert.True(t, found, "expected e5xd6 en passant move")
}

func TestLegalMovesPromotions(t *testing.T) {
	p, err := fen.Decode("8/PPPPPPPP/8/8/8/7k/K7/8 w - - 0 1")
	require.NoError(t, err)

	moves := p.LegalMoves()

	var promotions int
	for _, m := range moves {
		if m.IsPromotion() {
			promotions++
		}
	}
	assert.Equal(t, 32, promotions)
}

func TestLegalMovesCastlingLegality(t *testing.T) {
	p, err := fen.Decode("rnbqkbnr/ppp2ppp/3pp3/8/2BPP1Q1/2N1BN2/PPP2PPP/R3K2R w KQ - 6 7")
	require.NoError(t, err)

	moves := p.LegalMoves()

	var kingSide, queenSide bool
	for _, m := range moves {
		if m.IsKingSideCastle() {
			kingSide = true
		}
		if m.IsQueenSideCastle() {
			queenSide = true
		}
	}
	assert.True(t, kingSide, "expected O-O to be legal")
	assert.True(t, queenSide, "expected O-O-O to be legal")
}
