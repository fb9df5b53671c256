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

package engine

import "laptudirm.com/x/rixen/uci/option"

// UCI option Hash, type spin
//
// The value in MB allocated for the transposition table. This should be
// answered with the first setoption command at program boot if the
// engine has sent the appropriate option name Hash command, which should
// be supported by all engines.
func newHashOption(engine *Engine) option.Option {
	return &option.Spin{
		Default: 16, // default from stockfish
		Min:     1,
		// use stockfish value to suppress cutechess warnings
		Max: 33554432,
		Storage: func(hash int) error {
			engine.options.Hash = hash
			engine.search.ResizeTT(hash)
			return nil
		},
	}
}

// UCI option Threads, type spin
//
// The number of threads the engine should use while searching.
func newThreadsOption(engine *Engine) option.Option {
	return &option.Spin{
		Default: 1,
		Min:     1, Max: 512, // stockfish max

		Storage: func(threads int) error {
			engine.options.Threads = threads
			return nil
		},
	}
}

// UCI option Ponder, type check
//
// This means that the engine is able to ponder. The GUI will send this
// whenever pondering is possible or not.
//
// Note: the engine does not start pondering on its own if this is
// enabled; this option only decides whether a go ponder command is
// accepted, and a go ponder sent while it is disabled is rejected.
func newPonderOption(engine *Engine) option.Option {
	return &option.Check{
		Default: false,
		Storage: func(ponder bool) error {
			engine.options.Ponder = ponder
			return nil
		},
	}
}
