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

// Package attacks precomputes and exposes the attack bitboards of every
// piece type, from every square of the chessboard.
package attacks

import (
	"laptudirm.com/x/rixen/board/bitboard"
	"laptudirm.com/x/rixen/board/piece"
	"laptudirm.com/x/rixen/board/square"
)

// King, Knight, and Pawn hold the precomputed attack bitboards of the
// corresponding non-sliding piece from every square. Sliding piece
// attacks (Bishop, Rook, Queen) are instead computed on the fly, since
// they also depend on the current occupancy.
var (
	King   [square.N]bitboard.Board
	Knight [square.N]bitboard.Board
	Pawn   [piece.ColorN][square.N]bitboard.Board

	// PawnMoves holds the single-step quiet push bitboard of a pawn from
	// every square, ignoring double-pushes and blockers.
	PawnMoves [piece.ColorN][square.N]bitboard.Board
)

func init() {
	for s := square.A8; s <= square.H1; s++ {
		King[s] = kingAttacksFrom(s)
		Knight[s] = knightAttacksFrom(s)

		Pawn[piece.White][s] = whitePawnAttacksFrom(s)
		Pawn[piece.Black][s] = blackPawnAttacksFrom(s)

		PawnMoves[piece.White][s] = bitboard.Squares[s].North()
		PawnMoves[piece.Black][s] = bitboard.Squares[s].South()
	}
}

// board is a helper used while precomputing the attack bitboard of a
// non-sliding piece: it accumulates attacked squares reachable from
// origin by repeated calls to addAttack, discarding deltas that would
// step off the edge of the board.
type board struct {
	origin square.Square
	board  bitboard.Board
}

// addAttack sets the square offset from the helper's origin by the given
// file/rank deltas, if that square is on the board. Deltas which would
// wrap around a board edge (e.g. a knight jump from an a-file square
// landing on the g/h-file) are silently dropped.
func (b *board) addAttack(fileOffset square.File, rankOffset square.Rank) {
	originFile := b.origin.File()
	originRank := b.origin.Rank()

	attackFile := originFile + fileOffset
	attackRank := originRank + rankOffset

	if attackFile < square.FileA || attackFile > square.FileH ||
		attackRank < square.Rank8 || attackRank > square.Rank1 {
		return
	}

	b.board.Set(square.From(attackFile, attackRank))
}
