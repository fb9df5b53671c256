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
	"laptudirm.com/x/rixen/board/piece"
	"laptudirm.com/x/rixen/board/square"
)

// KingAreas holds, for each color and king square, the area of squares
// relevant to king-safety evaluation: the ring of squares around the
// king plus an extra rank extending towards that color's forward
// direction, so the area also covers the squares just in front of the
// king's shelter.
var KingAreas [piece.ColorN][square.N]Board

func init() {
	for s := square.A8; s <= square.H1; s++ {
		king := Squares[s]

		// ring of squares around the king: expand one file each way,
		// then one rank each way, and remove the king's own square
		horizontal := king | king.East() | king.West()
		ring := (horizontal | horizontal.North() | horizontal.South()) &^ king

		KingAreas[piece.White][s] = ring | ring.North()
		KingAreas[piece.Black][s] = ring | ring.South()
	}
}
