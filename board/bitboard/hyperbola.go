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

import (
	"math/bits"

	"laptudirm.com/x/rixen/board/square"
)

// Hyperbola computes the attack set of a slider on square s along the
// single line given by mask (a rank, file, or diagonal bitboard),
// blocked by the occupancy occ, using the Hyperbola Quintessence
// algorithm. https://www.chessprogramming.org/Hyperbola_Quintessence
func Hyperbola(s square.Square, occ, mask Board) Board {
	o := occ & mask
	r := Squares[s]

	forward := o - 2*r
	backward := reverse(reverse(o) - 2*reverse(r))

	return (forward ^ backward) & mask
}

func reverse(b Board) Board {
	return Board(bits.Reverse64(uint64(b)))
}
