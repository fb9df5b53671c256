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

// Package search implements various functions used to search a
// position for the best move.
package search

import (
	"context"
	"errors"
	"math"
	"time"

	"laptudirm.com/x/rixen/board"
	"laptudirm.com/x/rixen/board/move"
	"laptudirm.com/x/rixen/board/piece"
	"laptudirm.com/x/rixen/board/square"
	"laptudirm.com/x/rixen/internal/util"
	"laptudirm.com/x/rixen/search/eval"
	"laptudirm.com/x/rixen/search/tb"
	searchtime "laptudirm.com/x/rixen/search/time"
	"laptudirm.com/x/rixen/search/tt"
)

// tbProbeDepth is the minimum remaining depth at which probing the
// tablebase backend is considered worth its cost.
const tbProbeDepth = 2

// MaxDepth is the maximum depth to which the search will descend,
// regardless of any other limit.
const MaxDepth = 256

// NewContext creates a new Context from the given board. The transposition
// table is sized at 16 MB, matching the default Hash UCI option.
func NewContext(b *board.Board) *Context {
	ctx := &Context{
		Board:      b,
		tt:         tt.NewTable(16),
		tablebase:  tb.None{},
		stopped:    true,
	}
	ctx.abort, ctx.cancel = context.WithCancel(context.Background())
	return ctx
}

// Context stores various options, state, and debug variables regarding a
// particular search. During multiple searches on the same position, the
// internal board (*Context).Board should be switched out, while a brand
// new Context should be used for different games. A Context is not safe
// for use by more than one goroutine at a time; the SMP orchestrator in
// manager.go gives every worker its own Context, cloned from a common
// root board and sharing only the transposition table, so that Search can
// be fanned out across threads.
type Context struct {
	// search state
	Board     *board.Board
	tt        *tt.Table
	tablebase tb.Probe
	depth     int
	stopped   bool

	// excludeMove, indexed by ply, is skipped by the move loop. It is
	// set only while verifying a singular extension candidate.
	excludeMove [MaxDepth + 1]move.Move

	// abort is cancelled by Stop and polled by shouldStop, giving every
	// recursive negamax/quiescence frame a non-local way to unwind as
	// soon as a limit is breached or a sibling SMP worker asks for a
	// stop, instead of having to thread a bespoke error value back up
	// through every return.
	abort  context.Context
	cancel context.CancelFunc

	// smpIndex identifies this Context's position in the SMP helper
	// pool. 0 is the main, authoritative searcher; helper threads use
	// their 1-based index to pick their entry in the depth skip
	// schedule in manager.go.
	smpIndex int

	// root side to move; used by the time manager to pick the correct
	// per-color clock
	sideToMove piece.Color

	// move ordering heuristics
	killers [MaxDepth + 1][2]move.Move
	history [piece.ColorN][square.N][square.N]eval.Move

	// counterMove remembers, for every (from, to) pair played by the
	// opponent, the reply that most recently caused a beta cutoff.
	// Indexed by the opponent's move, it is tried early as a reply to
	// that same move in sibling nodes.
	counterMove [square.N][square.N]move.Move

	// followUp is a continuation history: it scores a quiet move by how
	// well it has performed as a reply two plies ago to the move that
	// is about to be played, captured by (grandparent.Source,
	// grandparent.Target, move.Source, move.Target).
	followUp [square.N][square.N][square.N][square.N]eval.Move

	// evalStack records the static evaluation computed at each ply
	// during this search, so that negamax can tell whether the current
	// position is improving on the one two plies ago.
	evalStack [MaxDepth + 1]eval.Eval

	// principal variation of the most recently completed iteration
	pv      move.Variation
	pvScore eval.Eval

	// stats
	stats Stats

	// search limits
	limits Limits
	time   searchtime.Manager

	// Reports, when non-nil, receives a copy of every completed
	// iteration's report alongside the normal UCI info line, so that an
	// external consumer such as cmd/rixen-watch can render progress
	// without reparsing stdout. Sends are non-blocking: a full or absent
	// channel never slows down the search.
	Reports chan Report
}

// SharesTT points ctx at the given table, so that multiple Contexts (one
// per worker thread) cooperate on a single shared hash table. See the SMP
// orchestrator in manager.go.
func (search *Context) SharesTT(table *tt.Table) {
	search.tt = table
}

// SetTablebase plugs a tablebase backend into the context. Passing
// tb.None{} (the default) disables probing.
func (search *Context) SetTablebase(probe tb.Probe) {
	search.tablebase = probe
}

// ResizeTT replaces the context's transposition table with a freshly
// allocated one sized at mb megabytes, discarding any existing entries.
func (search *Context) ResizeTT(mb int) {
	search.tt = tt.NewTable(mb)
}

// Search initializes the context for a new search and calls the main
// iterative deepening function. It checks if the position is illegal
// and cleans up the context after the search finishes.
func (search *Context) Search(limits Limits) (move.Variation, eval.Eval, error) {
	search.start(limits)
	defer search.Stop()

	// illegal position check; king can be captured
	if search.Board.IsInCheck(search.Board.SideToMove.Other()) {
		return move.Variation{}, eval.Inf, errors.New("search move: position is illegal")
	}

	pv, score := search.iterativeDeepening()
	return pv, score, nil
}

// InProgress reports whether a search is in progress on the given context.
func (search *Context) InProgress() bool {
	return !search.stopped
}

// Stop stops any ongoing search on the given context. The main search
// function will immediately return after this function is called.
func (search *Context) Stop() {
	search.stopped = true
	search.cancel()
}

// start initializes search variables during the start of a search.
func (search *Context) start(limits Limits) {
	limits.Depth = util.Min(limits.Depth, MaxDepth)
	if limits.Depth == 0 {
		limits.Depth = MaxDepth
	}

	// a zero node limit, or no clock and no move time, leaves the search
	// bounded only by its other limits
	if limits.Nodes == 0 {
		limits.Nodes = math.MaxInt32
	}
	if !limits.Infinite && limits.MoveTime == 0 && limits.Time == [piece.ColorN]int{} {
		limits.MoveTime = math.MaxInt32
	}

	search.sideToMove = search.Board.SideToMove
	search.tt.NextEpoch()

	// reset stats
	search.stats = Stats{SearchStart: time.Now()}

	// reset heuristics tables so stale killers/history from a previous,
	// unrelated position don't bias move ordering
	search.killers = [MaxDepth + 1][2]move.Move{}
	search.history = [piece.ColorN][square.N][square.N]eval.Move{}
	search.counterMove = [square.N][square.N]move.Move{}
	search.followUp = [square.N][square.N][square.N][square.N]eval.Move{}
	search.excludeMove = [MaxDepth + 1]move.Move{}
	for i := range search.excludeMove {
		search.excludeMove[i] = move.None
	}

	// start search
	search.stopped = false
	search.abort, search.cancel = context.WithCancel(context.Background())
	search.UpdateLimits(limits)
}

// score return the static evaluation of the current context's internal
// board. Any changes to the evaluation function should be done here.
func (search *Context) score() eval.Eval {
	return eval.PeSTO(search.Board)
}

// draw returns a randomized draw score to prevent threefold-repetition
// blindness while searching.
func (search *Context) draw() eval.Eval {
	return eval.RandDraw(search.stats.Nodes)
}
