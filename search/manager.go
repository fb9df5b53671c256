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

package search

import (
	"golang.org/x/sync/errgroup"

	"laptudirm.com/x/rixen/board/move"
	"laptudirm.com/x/rixen/search/eval"
)

// SMPCycles is the length of the helper depth-skip schedule below, taken
// from the cycle Stockfish uses to stagger its lazy-SMP helper threads
// across iterative-deepening depths.
const SMPCycles = 8

// skipSize and skipDepths jointly decide, for a helper thread with a
// given 1-based index, which iterative deepening depths it skips: helper
// index idx skips depth d whenever (d+skipDepths[c])%skipSize[c] != 0,
// where c = idx % SMPCycles. Threads therefore spend most of their time
// at depths the main thread hasn't reached yet, populating the shared
// transposition table ahead of it instead of redundantly repeating its
// work.
var skipSize = [SMPCycles]int{1, 1, 2, 2, 2, 2, 3, 3}
var skipDepths = [SMPCycles]int{0, 1, 0, 1, 2, 3, 0, 1}

// skipDepth reports whether the helper thread with the given 1-based SMP
// index should skip searching the given depth this iteration.
func skipDepth(index, depth int) bool {
	cycle := index % SMPCycles
	return (depth+skipDepths[cycle])%skipSize[cycle] != 0
}

// SearchSMP runs a lazy-SMP search: the receiver performs the
// authoritative iterative deepening search while threads-1 helper
// Contexts, each holding an independent clone of the current board,
// search the same position concurrently on their own goroutines,
// cooperating only through the receiver's shared transposition table.
// Helper results are discarded; their only purpose is to populate the
// table with entries the main search will probe once it reaches their
// depth, which in practice lets the main thread search deeper in the
// same amount of time.
// https://www.chessprogramming.org/Lazy_SMP
func (search *Context) SearchSMP(limits Limits, threads int) (move.Variation, eval.Eval, error) {
	if threads <= 1 {
		return search.Search(limits)
	}

	helpers := make([]*Context, threads-1)
	for i := range helpers {
		helper := NewContext(search.Board.Clone())
		helper.SharesTT(search.tt)
		helper.SetTablebase(search.tablebase)
		helper.smpIndex = i + 1
		helpers[i] = helper
	}

	group := errgroup.Group{}
	for _, helper := range helpers {
		helper := helper
		group.Go(func() error {
			// errors are impossible: Search only ever returns one for
			// an illegal root position, which the receiver would have
			// already rejected with the same board.
			_, _, _ = helper.Search(limits)
			return nil
		})
	}

	pv, score, err := search.Search(limits)

	for _, helper := range helpers {
		helper.Stop()
	}
	_ = group.Wait()

	return pv, score, err
}
