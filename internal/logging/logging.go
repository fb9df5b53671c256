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

// Package logging sets up structured diagnostic logging for the engine's
// offline tooling (datagen, tune, bench). The UCI-bound search core
// never imports this package: it reports over stdout via the info-line
// protocol in search.Report.String, exactly as UCI requires.
package logging

import (
	"os"

	"github.com/op/go-logging"
)

// Get returns a named logger writing levelled, timestamped lines to
// stderr, so it never interleaves with a tool's own stdout output (FEN
// dumps, PGN, etc).
func Get(name string) *logging.Logger {
	log := logging.MustGetLogger(name)

	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortfunc} %{level:.4s} ▶ %{message}`,
	)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)

	return log
}
