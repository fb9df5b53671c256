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

// Rook returns the attack bitboard of a rook on s given the occupancy
// occ, computed on the fly with Hyperbola Quintessence along the rook's
// file and rank. See the comment on Bishop for why this isn't routed
// through a magic bitboard table.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	fileMask := bitboard.Files[s.File()]
	rankMask := bitboard.Ranks[s.Rank()]

	return hyperbola(s, occ, fileMask) | hyperbola(s, occ, rankMask)
}
