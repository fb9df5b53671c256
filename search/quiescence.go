// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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
	"laptudirm.com/x/rixen/board/move"
	"laptudirm.com/x/rixen/internal/util"
	"laptudirm.com/x/rixen/search/eval"
)

// quiescence search is a type of limited search which only evaluates
// 'quiet' positions, i.e. positions with no tactical moves left to
// resolve like captures or promotions. It is needed to avoid the horizon
// effect, where negamax stops searching mid-exchange and misjudges the
// position.
// https://www.chessprogramming.org/Quiescence_Search
func (search *Context) quiescence(plys int, alpha, beta eval.Eval) eval.Eval {
	search.stats.Nodes++

	if search.shouldStop() {
		return 0
	}

	if search.Board.IsDraw() {
		return search.draw()
	}

	inCheck := search.Board.IsInCheck(search.Board.SideToMove)

	// standing pat: assume the position is at least as good as its
	// static evaluation, since a side is never forced to enter an
	// unfavourable capture sequence. Skipped while in check, since
	// there's no quiet alternative to a check evasion.
	var score eval.Eval
	if !inCheck {
		score = search.score()
		if score >= beta {
			return score
		}

		alpha = util.Max(alpha, score)
	} else {
		score = -eval.Inf
	}

	moves := search.Board.GenerateMoves()
	if len(moves) == 0 {
		if inCheck {
			return eval.MatedIn(plys)
		}

		return score
	}

	list := move.ScoreMoves(moves, eval.OfMove(search.Board, move.None))
	for i := 0; i < list.Length; i++ {
		m := list.PickMove(i)

		// outside of check, only tactical moves resolve the exchange;
		// once in check every legal move is an evasion worth trying
		if !inCheck && !m.IsCapture() && !m.IsPromotion() {
			continue
		}

		// skip captures that lose material even after the whole
		// exchange sequence is played out
		if !inCheck && m.IsCapture() && !eval.SEE(search.Board, m, -1) {
			continue
		}

		search.Board.MakeMove(m)
		curr := -search.quiescence(plys+1, -beta, -alpha)
		search.Board.UnmakeMove()

		if curr > score {
			score = curr

			if score > alpha {
				alpha = score

				if alpha >= beta {
					break // fail high
				}
			}
		}
	}

	return score
}
