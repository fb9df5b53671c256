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

package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"laptudirm.com/x/rixen/board"
	"laptudirm.com/x/rixen/search/eval"
)

// SEE on an undefended capture: the queen wins a free pawn, so the
// exchange beats any threshold at or below the pawn's value and fails
// any threshold above it.
func TestSEEFreeCapture(t *testing.T) {
	b := board.NewBoard("4k3/8/8/3p4/4Q3/5P2/8/4K3 w - - 0 1")
	m := b.NewMoveFromString("e4d5")

	assert.True(t, eval.SEE(b, m, 0))
	assert.True(t, eval.SEE(b, m, 100))
	assert.False(t, eval.SEE(b, m, 101))
}

// invariant 5 / SEE sweep: a queen capturing a pawn defended by another
// pawn loses the queen for the pawn, netting roughly -900. The sweep
// below checks the sign flips exactly where that true gain sits.
func TestSEEDefendedCaptureLosesQueen(t *testing.T) {
	b := board.NewBoard("4k3/8/2p5/3p4/4Q3/5P2/8/4K3 w - - 0 1")
	m := b.NewMoveFromString("e4d5")

	assert.False(t, eval.SEE(b, m, 0))
	assert.False(t, eval.SEE(b, m, -850))
	assert.True(t, eval.SEE(b, m, -900))
	assert.True(t, eval.SEE(b, m, -950))
}
