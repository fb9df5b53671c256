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

package board

import (
	"laptudirm.com/x/rixen/board/piece"
	"laptudirm.com/x/rixen/board/square"
	"laptudirm.com/x/rixen/board/zobrist"
)

// nullState records the position information a null move needs to
// restore on UnmakeNullMove. Unlike a regular move, a null move changes
// no piece positions, so only the reversible fields need saving.
type nullState struct {
	enPassant square.Square
	hash      zobrist.Key
}

// MakeNullMove passes the turn to the other side without moving any
// piece. It is used by null-move pruning to get a cheap upper bound on
// the value of the current position. The same Board must not call
// MakeNullMove twice in a row without an UnmakeNullMove in between.
func (b *Board) MakeNullMove() nullState {
	state := nullState{enPassant: b.EnPassantTarget, hash: b.Hash}

	if b.EnPassantTarget != square.None {
		b.Hash ^= zobrist.EnPassant[b.EnPassantTarget.File()]
		b.EnPassantTarget = square.None
	}

	b.SideToMove = b.SideToMove.Other()
	b.Hash ^= zobrist.SideToMove
	b.Plys++

	return state
}

// UnmakeNullMove reverts the effects of the most recent MakeNullMove.
func (b *Board) UnmakeNullMove(state nullState) {
	b.Plys--
	b.SideToMove = b.SideToMove.Other()
	b.EnPassantTarget = state.enPassant
	b.Hash = state.hash
}

// HasNonPawnMaterial reports whether the given side has any piece other
// than pawns and the king, i.e. whether it is safe to try a null move
// without running into zugzwang.
func (b *Board) HasNonPawnMaterial(c piece.Color) bool {
	return (b.ColorBBs[c] &^ (b.PieceBBs[piece.Pawn] | b.PieceBBs[piece.King])) != 0
}
