// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/rixen/board"
	"laptudirm.com/x/rixen/search/eval"
)

// S1: back-rank mate-in-1.
func TestSearchBackRankMate(t *testing.T) {
	b := board.NewBoard("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1")
	ctx := NewContext(b)

	pv, score, err := ctx.Search(Limits{Depth: 4})
	require.NoError(t, err)

	assert.Equal(t, b.NewMoveFromString("a1a8"), pv.Move(0))
	assert.Equal(t, eval.Mate-1, score)
}

// S2: fool's mate, mate-in-2 for black.
func TestSearchFoolsMate(t *testing.T) {
	b := board.NewBoard(board.StartFEN)
	for _, m := range []string{"f2f3", "e7e5", "g2g4"} {
		b.MakeMove(b.NewMoveFromString(m))
	}

	ctx := NewContext(b)

	pv, score, err := ctx.Search(Limits{Depth: 4})
	require.NoError(t, err)

	assert.Equal(t, b.NewMoveFromString("d8h4"), pv.Move(0))
	assert.Equal(t, eval.Mate-1, score)
}

// S3: stalemate is scored as a draw.
func TestSearchStalemateIsDraw(t *testing.T) {
	b := board.NewBoard("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	ctx := NewContext(b)

	_, score, err := ctx.Search(Limits{Depth: 2})
	require.NoError(t, err)

	assert.Equal(t, eval.Draw, score)
}

// S6: a depth-limited search of the starting position runs its last
// iteration at the depth limit, and its best move is legal there.
func TestSearchIterativeDeepeningMonotoneDepth(t *testing.T) {
	b := board.NewBoard(board.StartFEN)
	ctx := NewContext(b)

	pv, _, err := ctx.Search(Limits{Depth: 5})
	require.NoError(t, err)

	require.Greater(t, ctx.stats.Depth, 0)
	assert.Equal(t, 5, ctx.stats.Depth)

	legal := b.GenerateMoves()
	assert.Contains(t, legal, pv.Move(0))
}

// invariant 1: mate score consistency, both winning and losing ends.
func TestSearchMateScoreConsistency(t *testing.T) {
	winning := NewContext(board.NewBoard("6k1/5ppp/8/8/8/8/8/R6K w - - 0 1"))
	_, score, err := winning.Search(Limits{Depth: 3})
	require.NoError(t, err)
	assert.Equal(t, eval.Mate-1, score)

	// black to move is one ply from being mated; side to move's own
	// score should reflect the loss.
	losing := NewContext(board.NewBoard("R5k1/5ppp/8/8/8/8/8/7K b - - 0 1"))
	_, score, err = losing.Search(Limits{Depth: 3})
	require.NoError(t, err)
	assert.True(t, score < eval.LoseInMaxPly)
}

// invariant 3: determinism of a single-worker, fixed-depth search from a
// cleared table.
func TestSearchDeterminism(t *testing.T) {
	fen := "r1bqk1nr/pppp1ppp/2n5/2b1p3/2B1P3/5N2/PPPP1PPP/RNBQ1RK1 b kq - 5 4"

	run := func() (eval.Eval, string) {
		ctx := NewContext(board.NewBoard(fen))
		pv, score, err := ctx.Search(Limits{Depth: 6})
		require.NoError(t, err)
		return score, pv.Move(0).String()
	}

	score1, move1 := run()
	score2, move2 := run()

	assert.Equal(t, score1, score2)
	assert.Equal(t, move1, move2)
}

// invariant 6: two consecutive null moves are never applied. Exercised
// indirectly: a search of a zugzwang-prone position with only king and
// pawns for the side to move must not crash or desync the board, and the
// board must return to the root position once search completes.
func TestSearchNullMoveGuardDoesNotDesyncBoard(t *testing.T) {
	fen := "8/8/4k3/8/8/4K3/4P3/8 w - - 0 1"
	b := board.NewBoard(fen)
	ctx := NewContext(b)

	_, _, err := ctx.Search(Limits{Depth: 6})
	require.NoError(t, err)

	assert.Equal(t, fen, b.FEN())
}

// invariant 7 & 8: every move played during search and returned in the pv
// is legal, and the pv replays move by move into legal positions.
func TestSearchPVIsLegal(t *testing.T) {
	b := board.NewBoard(board.StartFEN)
	ctx := NewContext(b)

	pv, _, err := ctx.Search(Limits{Depth: 5})
	require.NoError(t, err)
	require.Greater(t, pv.Len(), 0)

	replay := board.NewBoard(board.StartFEN)
	for i := 0; i < pv.Len(); i++ {
		m := pv.Move(i)
		assert.Contains(t, replay.GenerateMoves(), m, "pv move %d (%s) illegal", i, m)
		replay.MakeMove(m)
	}
}

// S5: NMP must not fire for a side to move with only a king and pawns,
// i.e. its score must match a search with null move pruning disabled to
// within the aspiration window. hasNonPawnMaterial already guards the
// null move branch in negamax; this exercises that guard end to end by
// comparing against quiescence at the same node, which never null-moves.
func TestSearchZugzwangNoNullMove(t *testing.T) {
	fen := "8/8/4k3/8/8/4K3/4P3/8 w - - 0 1"
	ctx := NewContext(board.NewBoard(fen))

	_, score, err := ctx.Search(Limits{Depth: 1})
	require.NoError(t, err)

	qctx := NewContext(board.NewBoard(fen))
	qctx.start(Limits{Infinite: true})
	qscore := qctx.quiescence(0, -eval.Inf, eval.Inf)

	assert.InDelta(t, int(qscore), int(score), 200)
}
