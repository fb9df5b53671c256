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
	"fmt"

	"laptudirm.com/x/rixen/board/move"
	"laptudirm.com/x/rixen/search/eval"
)

// iterativeDeepening is the main search function. It implements an iterative
// deepening loop which calls the aspiration window driver for each
// iteration, reporting progress to the GUI after every completed depth.
// It returns the principal variation and its evaluation.
// https://www.chessprogramming.org/Iterative_Deepening
func (search *Context) iterativeDeepening() (move.Variation, eval.Eval) {
	var score eval.Eval

	// iterative deepening loop, starting from 1, search each depth until
	// the depth limit is reached or time runs out. Previous iterations
	// populate the transposition table and the killer/history tables,
	// which makes each subsequent, deeper iteration faster than directly
	// searching to that depth would be.
	for search.depth = 1; search.depth <= search.limits.Depth; search.depth++ {
		if search.smpIndex != 0 && skipDepth(search.smpIndex, search.depth) {
			// this is a lazy-SMP helper thread (see manager.go) and the
			// depth skip schedule says to let the main thread search
			// this depth alone; jump straight to the next one
			continue
		}

		search.stats.Depth = search.depth
		search.stats.SelDepth = 0

		iterationScore, pv := search.aspirationWindow(search.depth, score)

		if search.stopped {
			// don't use the new pv if search was stopped since the
			// iteration is probably unfinished
			break
		}

		// iteration completed successfully, update the reported pv
		score = iterationScore
		search.pv = pv
		search.pvScore = score

		if search.smpIndex == 0 {
			// only the authoritative main thread reports progress;
			// helper threads exist only to warm the shared TT
			report := search.GenerateReport()
			fmt.Println(report)

			if search.Reports != nil {
				select {
				case search.Reports <- report:
				default:
					// a slow or absent watcher never blocks the search
				}
			}
		}

		if search.isMateScore(score) && !search.limits.Infinite {
			// no point searching deeper than a found forced mate
			break
		}
	}

	return search.pv, search.pvScore
}

// isMateScore reports whether score represents a proven mate.
func (search *Context) isMateScore(score eval.Eval) bool {
	return score > eval.WinInMaxPly || score < eval.LoseInMaxPly
}
