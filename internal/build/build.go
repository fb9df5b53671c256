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

// Package build holds build information reported by the engine over UCI.
package build

// Version is the engine's version string, reported in response to the
// uci command. It is overridden at link time with -ldflags
// "-X laptudirm.com/x/rixen/internal/build.Version=...", falling back to
// this default for unversioned builds.
var Version = "v0.0.0-dev"
