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

import (
	"errors"

	"laptudirm.com/x/rixen/uci/cmd"
)

// UCI command ponderhit
//
// The user has played the expected move. The engine should continue
// searching but switch from pondering to normal search, using the limits
// that were sent with the go command before the ponder search started.
func newCmdPonderHit(engine *Engine) cmd.Command {
	return cmd.Command{
		Name: "ponderhit",
		Run: func(interaction cmd.Interaction) error {
			if !engine.pondering {
				return errors.New("ponderhit: no ponder search ongoing")
			}

			for !engine.search.InProgress() {
				// wait for the search goroutine to start before
				// updating limits, to avoid a race on engine.search
			}

			engine.pondering = false
			engine.search.UpdateLimits(engine.ponderLimits)
			return nil
		},
	}
}
