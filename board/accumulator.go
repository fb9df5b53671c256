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
)

// EfficientlyUpdatable is implemented by evaluation accumulators which can
// be kept in sync with a position incrementally, by being told which
// square gained or lost which piece, instead of being recomputed from
// scratch after every move.
type EfficientlyUpdatable interface {
	FillSquare(square.Square, piece.Piece)
	ClearSquare(square.Square, piece.Piece)
}
