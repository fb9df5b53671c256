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

package engine

import (
	"laptudirm.com/x/rixen/board"
	"laptudirm.com/x/rixen/search"
	"laptudirm.com/x/rixen/uci"
	"laptudirm.com/x/rixen/uci/option"
)

func NewClient() uci.Client {
	client := uci.NewClient()

	engine := &Engine{
		search: search.NewContext(board.NewBoard(startpos)),
	}

	engine.optionSchema.AddOption("Hash", newHashOption(engine))
	engine.optionSchema.AddOption("Threads", newThreadsOption(engine))
	engine.optionSchema.AddOption("Ponder", newPonderOption(engine))

	if err := engine.optionSchema.SetDefaults(); err != nil {
		// unreachable: the defaults above are always in bounds
		panic(err)
	}

	client.AddCommand(newCmdD(engine))
	client.AddCommand(newCmdUci(engine))
	client.AddCommand(newCmdUciNewGame(engine))
	client.AddCommand(newCmdGo(engine))
	client.AddCommand(newCmdPosition(engine))
	client.AddCommand(newCmdStop(engine))
	client.AddCommand(newCmdPonderHit(engine))
	client.AddCommand(newCmdSetOption(engine))

	return client
}

// Engine holds the state shared between all of the UCI commands
// implemented by this package. It is always handed to command
// constructors as a pointer so that commands like go and stop observe
// and mutate the same search in progress.
type Engine struct {
	search *search.Context

	searching bool

	pondering    bool
	ponderLimits search.Limits

	options      engineOptions
	optionSchema option.Schema
}

// engineOptions holds the current values of the UCI options supported by
// the engine.
type engineOptions struct {
	Ponder  bool // name Ponder type check
	Hash    int  // name Hash type spin
	Threads int  // name Threads type spin
}
