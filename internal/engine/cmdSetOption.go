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
	"laptudirm.com/x/rixen/uci/flag"
)

// UCI command setoption name <id> [value <x>]
//
// This is sent to the engine when the user wants to change the internal
// parameters of the engine. For the button type no value is needed.
func newCmdSetOption(engine *Engine) cmd.Command {
	schema := flag.NewSchema()

	schema.Single("name")
	schema.Variadic("value")

	return cmd.Command{
		Name: "setoption",
		Run: func(interaction cmd.Interaction) error {
			name, value, err := parseSetOptionFlags(interaction.Values)
			if err != nil {
				return err
			}

			return engine.optionSchema.SetOption(name, value)
		},
		Flags: schema,
	}
}

func parseSetOptionFlags(values flag.Values) (string, []string, error) {
	if !values["name"].Set {
		return "", nil, errors.New("setoption: name flag not found")
	}

	name := values["name"].Value.(string)

	value := []string{}
	if values["value"].Set {
		value = values["value"].Value.([]string)
	}

	return name, value, nil
}
