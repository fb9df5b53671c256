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

package attacks

import (
	"laptudirm.com/x/rixen/board/bitboard"
	"laptudirm.com/x/rixen/board/square"
)

// Bishop returns the attack bitboard of a bishop on s given the occupancy
// blockers, computed on the fly with Hyperbola Quintessence along both of
// the bishop's diagonals. mess originally precomputed these with a magic
// bitboard table (see board/move/attacks/magic.go, dropped); Hyperbola
// Quintessence needs no precomputed magic numbers and is already what the
// magic table's slow path fell back to, so the magic layer added no
// value here and is skipped.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	diagonalMask := bitboard.Diagonals[s.Diagonal()]
	antiDiagonalMask := bitboard.AntiDiagonals[s.AntiDiagonal()]

	return hyperbola(s, occ, diagonalMask) | hyperbola(s, occ, antiDiagonalMask)
}
