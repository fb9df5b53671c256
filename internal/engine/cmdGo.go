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
	"errors"
	"math"
	"strconv"

	"laptudirm.com/x/rixen/board/piece"
	"laptudirm.com/x/rixen/search"
	"laptudirm.com/x/rixen/uci/cmd"
	"laptudirm.com/x/rixen/uci/flag"
)

func parseSearchLimits(values flag.Values) (search.Limits, error) {
	var limits search.Limits

	limits.Depth = search.MaxDepth
	if depth := values["depth"]; depth.Set {
		d, _ := strconv.Atoi(depth.Value.(string))
		limits.Depth = d
	}

	limits.Nodes = math.MaxInt32
	if nodes := values["nodes"]; nodes.Set {
		n, _ := strconv.Atoi(nodes.Value.(string))
		limits.Nodes = n
	}

	switch {
	case values["movetime"].Set:
		t, err := strconv.Atoi(values["movetime"].Value.(string))
		if err != nil {
			return limits, err
		}

		limits.MoveTime = t

	case values["wtime"].Set:
		var err error

		limits.Time[piece.White], err = strconv.Atoi(values["wtime"].Value.(string))
		if err != nil {
			return limits, err
		}

		limits.Time[piece.Black], err = strconv.Atoi(values["btime"].Value.(string))
		if err != nil {
			return limits, err
		}

		if values["winc"].Set {
			limits.Increment[piece.White], err = strconv.Atoi(values["winc"].Value.(string))
			if err != nil {
				return limits, err
			}

			limits.Increment[piece.Black], err = strconv.Atoi(values["binc"].Value.(string))
			if err != nil {
				return limits, err
			}
		}

		if values["movestogo"].Set {
			limits.MovesToGo, err = strconv.Atoi(values["movestogo"].Value.(string))
			if err != nil {
				return limits, err
			}
		}

	case values["infinite"].Set:
		limits.Infinite = true

	default:
		limits.MoveTime = math.MaxInt32
	}

	return limits, nil
}

func newCmdGo(engine *Engine) cmd.Command {
	schema := flag.NewSchema()

	schema.Button("ponder")
	schema.Single("wtime")
	schema.Single("btime")
	schema.Single("winc")
	schema.Single("binc")
	schema.Single("movestogo")
	schema.Single("depth")
	schema.Single("nodes")
	schema.Single("movetime")
	schema.Button("infinite")

	return cmd.Command{
		Name: "go",
		Run: func(interaction cmd.Interaction) error {
			if engine.search.InProgress() {
				// search already ongoing
				return errors.New("error: search currently in progress")
			}

			limits, err := parseSearchLimits(interaction.Values)
			if err != nil {
				return err
			}

			if interaction.Values["ponder"].Set {
				if !engine.options.Ponder {
					return errors.New("go ponder: pondering is disabled")
				}

				engine.pondering = true
				// remember the real limits for after ponderhit
				engine.ponderLimits = limits

				// search indefinitely until stop or ponderhit arrives
				limits = search.Limits{
					Depth:    search.MaxDepth,
					Nodes:    math.MaxInt32,
					Infinite: true,
				}
			}

			engine.searching = true
			defer func() {
				engine.searching = false
				engine.pondering = false
			}()

			pv, _, err := engine.search.SearchSMP(limits, engine.options.Threads)
			if err != nil {
				return err
			}

			if bestMove, ponderMove := pv.Move(0), pv.Move(1); ponderMove.IsNone() {
				interaction.Replyf("bestmove %s", bestMove)
			} else {
				interaction.Replyf("bestmove %s ponder %s", bestMove, ponderMove)
			}

			return nil
		},
		// execution of this function should not block the prompt loop
		Parallel: true,
		Flags:    schema,
	}
}

func newCmdStop(engine *Engine) cmd.Command {
	return cmd.Command{
		Name: "stop",
		Run: func(interaction cmd.Interaction) error {
			if !engine.search.InProgress() {
				return errors.New("stop: no search ongoing")
			}

			// stop the search
			engine.search.Stop()
			return nil
		},
	}
}
