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
	"laptudirm.com/x/rixen/internal/util"
	"laptudirm.com/x/rixen/board/move"
	"laptudirm.com/x/rixen/search/eval"
)

// storeKiller tries to store the given move from the given depth as one
// of the two killer moves.
func (search *Context) storeKiller(plys int, killer move.Move) {
	if !killer.IsCapture() && killer != search.killers[plys][0] {
		// different move in killer 1
		// move it to killer 2 position
		search.killers[plys][1] = search.killers[plys][0]
		search.killers[plys][0] = killer // new killer 1
	}
}

// updateHistory updates the history score of the given move with the given
// bonus. It also verifies that the move is a quiet move.
func (search *Context) updateHistory(m move.Move, bonus eval.Move) {
	if !m.IsCapture() {
		entry := &search.history[search.Board.SideToMove][m.Source()][m.Target()]
		*entry += bonus - *entry*util.Abs(bonus)/32768
	}
}

// depthBonus returns the the history bonus for a particular depth.
func depthBonus(depth int) eval.Move {
	return eval.Move(util.Min(2000, depth*155))
}

// lastMove returns the move which led to the current position, or
// move.None at the root or after a null move history was cleared.
func (search *Context) lastMove() move.Move {
	if search.Board.Plys < 1 {
		return move.None
	}
	return search.Board.History[search.Board.Plys-1].Move
}

// twoPliesAgo returns the move played by the side to move the last time
// it was on the move, used to index the follow-up history table.
func (search *Context) twoPliesAgo() move.Move {
	if search.Board.Plys < 2 {
		return move.None
	}
	return search.Board.History[search.Board.Plys-2].Move
}

// storeCounterMove remembers m as the reply which caused a beta cutoff
// against the opponent's last move, so it is tried early the next time
// that same move is faced.
func (search *Context) storeCounterMove(m move.Move) {
	if last := search.lastMove(); !last.IsNone() {
		search.counterMove[last.Source()][last.Target()] = m
	}
}

// counterMoveOf returns the stored reply to the opponent's last move, or
// move.None if none has been recorded yet.
func (search *Context) counterMoveOf() move.Move {
	if last := search.lastMove(); !last.IsNone() {
		return search.counterMove[last.Source()][last.Target()]
	}
	return move.None
}

// updateFollowUp updates the follow-up (continuation) history score of m
// as a reply to whatever the side to move played two plies ago.
func (search *Context) updateFollowUp(m move.Move, bonus eval.Move) {
	if m.IsCapture() {
		return
	}
	grandparent := search.twoPliesAgo()
	if grandparent.IsNone() {
		return
	}
	entry := &search.followUp[grandparent.Source()][grandparent.Target()][m.Source()][m.Target()]
	*entry += bonus - *entry*util.Abs(bonus)/32768
}

// followUpScore returns the continuation history score of m as a reply
// to whatever the side to move played two plies ago.
func (search *Context) followUpScore(m move.Move) eval.Move {
	grandparent := search.twoPliesAgo()
	if grandparent.IsNone() {
		return eval.DefaultMove
	}
	return search.followUp[grandparent.Source()][grandparent.Target()][m.Source()][m.Target()]
}

// seeMargins returns the see pruning thresholds for the given depth.
func seeMargins(depth int) (quiet, noisy eval.Eval) {
	quiet = eval.Eval(-64 * depth)
	noisy = eval.Eval(-19 * depth * depth)
	return quiet, noisy
}
