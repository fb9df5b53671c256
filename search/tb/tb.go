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

// Package tb defines a pluggable endgame tablebase probing interface. It
// ships no tablebase data or probing code of its own: search calls into
// whatever Probe implementation the engine was configured with, defaulting
// to None when no tablebase is loaded.
package tb

import (
	"laptudirm.com/x/rixen/board"
)

// WDL is the win/draw/loss classification of a tablebase hit, from the
// perspective of the side to move.
type WDL int

const (
	Loss        WDL = -2
	BlessedLoss WDL = -1 // loss, but the 50-move rule may save it
	Draw        WDL = 0
	CursedWin   WDL = 1 // win, but the 50-move rule may spoil it
	Win         WDL = 2
)

// Result is the outcome of a single tablebase probe.
type Result struct {
	Found bool
	WDL   WDL
	DTZ   int // distance to the next zeroing (pawn move or capture) move
}

// Probe is implemented by a tablebase backend. Search only ever calls
// ProbeWDL; ProbeDTZ is exposed for root move ordering/selection once a
// backend is plugged in, mirroring how engines use WDL during search and
// reserve the more expensive DTZ probe for the root.
type Probe interface {
	// ProbeWDL looks up the win/draw/loss value of a position.
	ProbeWDL(b *board.Board) Result

	// ProbeDTZ looks up the distance-to-zero value of a position, used
	// to pick a move that actually converts a known win.
	ProbeDTZ(b *board.Board) Result

	// MaxPieces returns the largest total piece count (including kings)
	// this backend has tables for.
	MaxPieces() int

	// Available reports whether the backend has any tables loaded.
	Available() bool
}

// CountPieces returns the total number of pieces, of both colors, left
// on the board, which is compared against Probe.MaxPieces to decide
// whether a position is worth probing.
func CountPieces(b *board.Board) int {
	return b.ColorBBs[0].Count() + b.ColorBBs[1].Count()
}

// None is a Probe that never has any tables loaded. It is the default
// tablebase backend for a new search Context.
type None struct{}

func (None) ProbeWDL(*board.Board) Result { return Result{} }
func (None) ProbeDTZ(*board.Board) Result { return Result{} }
func (None) MaxPieces() int               { return 0 }
func (None) Available() bool              { return false }
