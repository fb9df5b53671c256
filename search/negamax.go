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
	"laptudirm.com/x/rixen/search/tb"
	"laptudirm.com/x/rixen/search/tt"
)

// tbDraw is the WDL value that is stored as an exact score rather than a
// bound, matching how the transposition table treats an exact entry.
const tbDraw = tb.Draw

// tbEval converts a tablebase WDL verdict into a search score, preferring
// the fastest mate/slowest-to-be-mated line, mirroring how TT mate scores
// are distance-adjusted by ply.
func tbEval(wdl tb.WDL, plys int) eval.Eval {
	switch wdl {
	case tb.Win:
		return eval.Mate - eval.Eval(plys) - 1000
	case tb.CursedWin:
		return eval.Draw + 1
	case tb.Loss:
		return -eval.Mate + eval.Eval(plys) + 1000
	case tb.BlessedLoss:
		return eval.Draw - 1
	default:
		return eval.Draw
	}
}

// negamax is a simplified version of the minmax searching algorithm, which
// uses a single function for both the maximizing and minimizing players.
// This can be achieved because chess is a zero-sum game and one player's
// advantage is the other's disadvantage.
// https://www.chessprogramming.org/Negamax
//
// This function also implements alpha-beta pruning to reduce the amount of
// nodes that need to be searched, due to the fact that a single refutation
// is enough to mark a position as worse compared to an already found one,
// along with a catalogue of further pruning, reduction, and extension
// heuristics (mate-distance pruning, null-move pruning, reverse-futility
// pruning, razoring, ProbCut, singular extensions, late move reductions,
// SEE pruning) which trade a small amount of search accuracy for a much
// smaller search tree.
// https://www.chessprogramming.org/Alpha-Beta
//
// doNull tells negamax whether it is allowed to try null-move pruning at
// this node. It is false only on the reduced-depth search that verifies a
// null move, so that a line can never contain two null moves in a row.
func (search *Context) negamax(plys, depth int, alpha, beta eval.Eval, pv *move.Variation, doNull bool) eval.Eval {
	search.stats.Nodes++

	// quick exit clauses
	switch {
	case search.shouldStop():
		// some search limit has been breached
		// the return value doesn't matter since this search's result
		// will be trashed and the previous iteration's pv will be used
		return 0

	case search.Board.IsDraw():
		// position is draw due to 50-move rule or threefold-repetition
		return search.draw()

	case depth <= 0, plys >= MaxDepth:
		// depth 0 reached, drop to quiescence search to prevent
		// the horizon effect from making the evaluation bad
		return search.quiescence(plys, alpha, beta)
	}

	// node properties
	isRoot := plys == 0
	isPVNode := beta-alpha != 1 // beta = alpha + 1 during PVS
	inCheck := search.Board.IsInCheck(search.Board.SideToMove)
	excluded := search.excludeMove[plys] // singular extension candidate being verified, if any

	if plys > search.stats.SelDepth {
		search.stats.SelDepth = plys
	}

	// mate distance pruning: even if a checkmate is delivered on the
	// very next move, it cannot be better than being mated in this many
	// plies already, nor worse than delivering mate this many plies from
	// now. Clamping the window to these bounds lets the search return
	// early once no move could possibly matter.
	if !isRoot {
		rAlpha := util.Max(alpha, -eval.Mate+eval.Eval(plys))
		rBeta := util.Min(beta, eval.Mate-eval.Eval(plys)-1)
		if rAlpha >= rBeta {
			return rAlpha
		}
		alpha, beta = rAlpha, rBeta
	}

	// keep track of the original value of alpha for determining whether
	// the score will act as an upper bound entry in the transposition table
	originalAlpha := alpha

	// keep track of best move and score
	bestMove := move.None
	bestEval := -eval.Inf

	// check for transposition table hits
	var ttHit bool
	var ttEntry tt.Entry
	if excluded == move.None {
		if ttEntry, ttHit = search.tt.Probe(search.Board.Hash); ttHit {
			// use pv move for move ordering in any case
			bestMove = ttEntry.Move

			// only use entry if current node is not a pv node and
			// entry depth is >= current depth (not worse quality)
			if !isPVNode && int(ttEntry.Depth) >= depth {
				search.stats.TTHits++
				value := ttEntry.Value.Eval(plys)

				switch ttEntry.Type {
				case tt.ExactEntry:
					return value
				case tt.LowerBound:
					alpha = util.Max(alpha, value)
				case tt.UpperBound:
					beta = util.Min(beta, value)
				}

				if alpha >= beta {
					return value // fail high
				}
			}
		}
	}

	// tablebase probing: once few enough pieces remain, consult the
	// pluggable endgame tablebase backend instead of searching further.
	// A hit is treated like a very reliable transposition table entry.
	if !isRoot && excluded == move.None && depth >= tbProbeDepth &&
		search.Board.DrawClock == 0 && search.tablebase.Available() &&
		tb.CountPieces(search.Board) <= search.tablebase.MaxPieces() {

		if result := search.tablebase.ProbeWDL(search.Board); result.Found {
			search.stats.TBHits++
			value := tbEval(result.WDL, plys)

			var entryType tt.EntryType
			switch {
			case result.WDL == tbDraw:
				entryType = tt.ExactEntry
			case value >= beta:
				entryType = tt.LowerBound
			default:
				entryType = tt.UpperBound
			}

			if entryType == tt.ExactEntry {
				return value
			}
			if entryType == tt.LowerBound && value >= beta {
				return value
			}
		}
	}

	staticEval := search.score()
	if inCheck {
		// static eval is meaningless while in check: every pruning
		// heuristic below assumes it reflects reality, which it
		// doesn't when the side to move must answer a check
		staticEval = -eval.Inf
	}
	search.evalStack[plys] = staticEval

	// improving reports whether the static eval of this node is better
	// than it was the last time this side was to move (two plies ago).
	// Reverse futility pruning and late move reductions below are more
	// aggressive when the position is not improving.
	improving := !inCheck && plys >= 2 && search.evalStack[plys-2] != -eval.Inf &&
		staticEval > search.evalStack[plys-2]

	if !isPVNode && !inCheck && excluded == move.None {
		// reverse futility (static null move) pruning: if the static
		// eval already beats beta by a depth-scaled margin, assume the
		// position is so good that searching it further is unnecessary.
		// The margin is tightened when the position isn't improving.
		margin := eval.Eval(80 * depth)
		if !improving {
			margin -= 60
		}
		if depth <= 8 && staticEval-margin >= beta && util.Abs(beta) < eval.WinInMaxPly {
			return staticEval
		}

		// razoring: a static eval far below alpha at shallow depth is
		// unlikely to recover, so verify with a cheap quiescence call
		// before committing to a full-depth search
		if depth <= 3 && staticEval+eval.Eval(300*depth) < alpha {
			if score := search.quiescence(plys, alpha, beta); score < alpha {
				return score
			}
		}

		// null move pruning: let the opponent move twice in a row; if
		// the position is still good enough to fail high even after
		// giving up a tempo, the real move is assumed to do so too.
		// Zugzwang positions (only pawns and king left) are excluded,
		// since passing is uniquely dangerous there, and it is skipped
		// directly after a null move (doNull is false there), or if the
		// transposition table already refutes the cutoff. A null move two
		// plies back does not prevent it.
		ttRefutes := ttHit && ttEntry.Type == tt.UpperBound && ttEntry.Value.Eval(plys) < beta
		if doNull && depth >= 3 && staticEval >= beta && !ttRefutes &&
			search.Board.HasNonPawnMaterial(search.Board.SideToMove) {

			reduction := 4 + depth/6 + util.Min(3, int(staticEval-beta)/200)
			state := search.Board.MakeNullMove()
			score := -search.negamax(plys+1, depth-1-reduction, -beta, -beta+1, &move.Variation{}, false)
			search.Board.UnmakeNullMove(state)

			if score >= beta {
				if score >= eval.WinInMaxPly {
					score = beta // don't return unproven mate scores
				}
				return score
			}
		}

		// ProbCut: if a quick, reduced-depth search on noisy moves
		// shows a cutoff well above beta, assume a full search would
		// too and skip it. https://www.chessprogramming.org/ProbCut
		if depth >= 5 && util.Abs(beta) < eval.WinInMaxPly {
			probCutBeta := beta + 150
			probCutMoves := search.Board.GenerateMoves()
			list := move.ScoreMoves(probCutMoves, eval.OfMove(search.Board, bestMove))
			for i := 0; i < list.Length; i++ {
				m := list.PickMove(i)
				if !m.IsCapture() && !m.IsPromotion() {
					continue
				}
				if !eval.SEE(search.Board, m, probCutBeta-staticEval) {
					continue
				}

				search.Board.MakeMove(m)
				score := -search.quiescence(plys+1, -probCutBeta, -probCutBeta+1)
				if score >= probCutBeta {
					score = -search.negamax(plys+1, depth-4, -probCutBeta, -probCutBeta+1, &move.Variation{}, true)
				}
				search.Board.UnmakeMove()

				if score >= probCutBeta {
					return score
				}
			}
		}
	}

	// generate all moves
	moves := search.Board.GenerateMoves()
	if len(moves) == 0 {
		// no legal moves, so some type of mate
		if inCheck {
			return eval.MatedIn(plys) // checkmate
		}

		return eval.Draw // stalemate
	}

	// singular extensions: if the tt move is so much better than every
	// alternative that even a reduced-depth, lowered-window search
	// cannot find a replacement, it is singular: the position hinges on
	// it, so the move is searched one ply deeper.
	// https://www.chessprogramming.org/Singular_Extensions
	singularMove := move.None
	if !isRoot && excluded == move.None && ttHit && depth >= 8 &&
		bestMove != move.None && int(ttEntry.Depth) >= depth-3 &&
		ttEntry.Type != tt.UpperBound && util.Abs(ttEntry.Value.Eval(plys)) < eval.WinInMaxPly {

		singularBeta := ttEntry.Value.Eval(plys) - eval.Eval(depth*2)
		singularDepth := (depth - 1) / 2

		search.excludeMove[plys] = bestMove
		score := search.negamax(plys, singularDepth, singularBeta-1, singularBeta, &move.Variation{}, doNull)
		search.excludeMove[plys] = move.None

		if score < singularBeta {
			singularMove = bestMove
		}
	}

	// move ordering; score the generated moves, biasing quiet moves by
	// their killer/history/counter-move/follow-up heuristic scores
	list := move.ScoreMoves(moves, search.orderingScorer(plys, bestMove))

	quietsSearched := make([]move.Move, 0, list.Length)
	played := 0

	for i := 0; i < list.Length; i++ {
		var childPV move.Variation

		m := list.PickMove(i)
		if m == excluded {
			continue
		}

		isQuiet := m.IsQuiet()

		// late move pruning / SEE pruning / counter-move & follow-up
		// history pruning: skip quiet moves which are very unlikely to
		// be best this deep into the move list, and skip any move
		// which loses too much material per SEE
		if !isRoot && !inCheck && bestEval > -eval.WinInMaxPly {
			quietMargin, noisyMargin := seeMargins(depth)

			if isQuiet && depth <= 8 && played >= 3+depth*depth {
				continue
			}

			if isQuiet && depth <= 16 && m != search.counterMoveOf() &&
				search.followUpScore(m) < -eval.Move(1024*depth) {
				continue
			}

			if depth <= 8 && !eval.SEE(search.Board, m, util.Ternary(isQuiet, quietMargin, noisyMargin)) {
				continue
			}
		}

		search.Board.MakeMove(m)
		played++

		givesCheck := search.Board.IsInCheck(search.Board.SideToMove)

		// search extensions: a move which escapes check, or a tt move
		// found singular above, is rarely safe to prune or reduce, so
		// it is searched one ply deeper than the rest of the move list
		extension := 0
		switch {
		case m == singularMove:
			extension = 1
		case inCheck, givesCheck:
			extension = 1
		}

		// Principal Variation Search with late move reductions: search
		// every move but the first with a reduced-depth null window;
		// only re-search at full depth/window if it beats alpha
		var score eval.Eval
		reduction := 0

		if depth >= 3 && played > 1 && isQuiet && extension == 0 {
			reduction = reductions[util.Min(depth, MaxDepth)][util.Min(played, 127)]
			if isPVNode {
				reduction--
			}
			if !improving {
				reduction++
			}
			reduction = util.Max(reduction, 0)
		}

		if played == 1 {
			// first move searched at full depth and window
			score = -search.negamax(plys+1, depth-1+extension, -beta, -alpha, &childPV, true)
		} else {
			// null window search, possibly reduced
			score = -search.negamax(plys+1, depth-1+extension-reduction, -alpha-1, -alpha, &childPV, true)

			if score > alpha && (reduction > 0 || isPVNode) {
				// reduction or null window search beat alpha, the move
				// may be better than currently believed: re-search
				score = -search.negamax(plys+1, depth-1+extension, -beta, -alpha, &childPV, true)
			}
		}

		search.Board.UnmakeMove()

		if isQuiet {
			quietsSearched = append(quietsSearched, m)
		}

		// update score and bounds
		if score > bestEval {
			// better move found
			bestMove = m
			bestEval = score

			// check if move is new pv move
			if score > alpha {
				// new pv so alpha increases
				alpha = score

				// update parent pv
				pv.Update(m, childPV)

				if alpha >= beta {
					// fail high: reward the move that caused it and
					// penalize the quiets that were tried and failed
					if isQuiet {
						search.storeKiller(plys, m)
						search.storeCounterMove(m)
						bonus := depthBonus(depth)
						search.updateHistory(m, bonus)
						search.updateFollowUp(m, bonus)
						for _, quiet := range quietsSearched[:len(quietsSearched)-1] {
							search.updateHistory(quiet, -bonus)
							search.updateFollowUp(quiet, -bonus)
						}
					}

					break // fail high
				}
			}
		}
	}

	if played == 0 {
		// every move was either the singular-extension candidate being
		// excluded, or pruned outright by the late-move/SEE/history
		// filters above; alpha is the best available bound in both cases
		return alpha
	}

	// if search is stopped, score may be of a bad quality and
	// thus can pollute the transposition table for future searches
	if !search.stopped && excluded == move.None {
		var entryType tt.EntryType
		switch {
		case bestEval <= originalAlpha:
			// if score <= alpha, it is a worse position for the max player than
			// a previously explored line, since the move's exact score is at
			// most score. Therefore, it is an upperbound on the exact score.
			entryType = tt.UpperBound
		case bestEval >= beta:
			// if score >= beta, it is a worse position for the min player than
			// a previously explored line, singe the move's exact score is at
			// least score. Therefore, it is a lowerbound on the exact score.
			entryType = tt.LowerBound
		default:
			// if score is inside the bounds of alpha and beta, both the players
			// have been able to improve their position and it is an exact score.
			entryType = tt.ExactEntry
		}

		// update transposition table
		search.tt.Store(tt.Entry{
			Hash:  search.Board.Hash,
			Value: tt.EvalFrom(bestEval, plys),
			Move:  bestMove,
			Depth: uint8(util.Min(depth, 255)),
			Type:  entryType,
		})
	}

	return bestEval
}

// orderingScorer returns a move evaluation function which layers the
// killer, counter-move, follow-up, and history heuristics for quiet moves
// on top of the base pv/mvv-lva ordering from eval.OfMove.
func (search *Context) orderingScorer(plys int, bestMove move.Move) eval.MoveFunc {
	base := eval.OfMove(search.Board, bestMove)
	killers := search.killers[plys]
	counter := search.counterMoveOf()

	return func(m move.Move) eval.Move {
		switch {
		case m == bestMove:
			return base(m)

		case m.IsQuiet() && m == killers[0]:
			return eval.MvvLvaOffset - 1

		case m.IsQuiet() && m == killers[1]:
			return eval.MvvLvaOffset - 2

		case m.IsQuiet() && m == counter && counter != move.None:
			return eval.MvvLvaOffset - 3

		case m.IsQuiet():
			entry := search.history[search.Board.SideToMove][m.Source()][m.Target()]
			return eval.DefaultMove + entry + search.followUpScore(m)/2

		default:
			return base(m)
		}
	}
}
