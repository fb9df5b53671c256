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

package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"laptudirm.com/x/rixen/search/eval"
)

// invariant 2: EvalFrom(v, h).Eval(h) == v for every plys h and
// score v, including mate scores which get rebased relative to the root.
func TestEntryEvalRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		v    eval.Eval
		plys int
	}{
		{"regular score, root", 123, 0},
		{"regular score, deep", -456, 17},
		{"mate for side to move, shallow", eval.Mate - 1, 0},
		{"mate for side to move, deep", eval.Mate - 5, 9},
		{"mated, shallow", eval.MatedIn(0), 0},
		{"mated, deep", eval.MatedIn(3), 6},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			stored := EvalFrom(c.v, c.plys)
			roundTripped := stored.Eval(c.plys)
			assert.Equal(t, c.v, roundTripped)
		})
	}
}
