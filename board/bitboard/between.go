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

package bitboard

import "laptudirm.com/x/rixen/board/square"

// Between holds, for every pair of squares, the bitboard of squares lying
// strictly between them along a shared rank, file, or diagonal. It is
// Empty for pairs which don't share a line (including a square and
// itself). Check-mask and pin-mask calculation both rely on this table to
// turn "king sq, attacker sq" pairs into a blocking/capture mask.
var Between [square.N][square.N]Board

func init() {
	directions := [8][2]int{
		{0, 1}, {0, -1}, {1, 0}, {-1, 0},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}

	for from := square.A8; from <= square.H1; from++ {
		fromFile, fromRank := int(from.File()), int(from.Rank())

		for _, d := range directions {
			var mask Board

			file, rank := fromFile+d[0], fromRank+d[1]
			for file >= 0 && file < 8 && rank >= 0 && rank < 8 {
				to := square.From(square.File(file), square.Rank(rank))
				Between[from][to] = mask

				mask |= Squares[to]
				file, rank = file+d[0], rank+d[1]
			}
		}
	}
}
