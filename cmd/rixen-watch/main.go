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

// Command rixen-watch attaches a scrolling terminal dashboard to a single
// search, rendering depth/score/nodes/pv progress live instead of raw UCI
// info lines. It is a development aid, not part of the UCI protocol
// surface: the engine binary (cmd/rixen) still talks plain UCI on stdio.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
	"golang.org/x/term"

	"laptudirm.com/x/rixen/board"
	"laptudirm.com/x/rixen/internal/build"
	"laptudirm.com/x/rixen/search"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "fen of the position to search")
	movetime := flag.Int("movetime", 10_000, "time in milliseconds to search for")
	depth := flag.Int("depth", search.MaxDepth, "depth limit for the search")
	flag.Parse()

	b := board.NewBoard(*fen)
	ctx := search.NewContext(b)
	ctx.Reports = make(chan search.Report, 8)

	limits := search.Limits{Depth: *depth, MoveTime: *movetime}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if _, _, err := ctx.Search(limits); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		// not attached to a terminal, e.g. piped to a file: fall back to
		// plain line-buffered progress instead of drawing a TUI over it
		watchPlain(ctx, done)
		return
	}

	if err := watchTUI(ctx, done); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// watchPlain prints each completed iteration's report as it arrives,
// used when stdout isn't an interactive terminal.
func watchPlain(ctx *search.Context, done <-chan struct{}) {
	for {
		select {
		case report, ok := <-ctx.Reports:
			if !ok {
				return
			}
			fmt.Println(report)
		case <-done:
			return
		}
	}
}

// watchTUI draws a live dashboard: a header with the engine banner and
// current best line, and a scrolling list of every completed iteration.
func watchTUI(ctx *search.Context, done <-chan struct{}) error {
	if err := ui.Init(); err != nil {
		return fmt.Errorf("rixen-watch: %w", err)
	}
	defer ui.Close()

	width, height := ui.TerminalDimensions()

	banner := fmt.Sprintf("rixen %s — watching search on %s", build.Version, ctx.Board.FEN())
	// uniseg measures the banner's true terminal column width (not byte
	// or rune count) so it's truncated consistently regardless of any
	// multi-byte characters the FEN or version string might carry.
	if uniseg.StringWidth(banner) > width-2 {
		banner = runewidth.Truncate(banner, width-2, "…")
	}

	header := widgets.NewParagraph()
	header.Title = "rixen-watch"
	header.Text = banner
	header.SetRect(0, 0, width, 3)

	best := widgets.NewParagraph()
	best.Title = "current best"
	best.Text = "searching..."
	best.SetRect(0, 3, width, 6)

	history := widgets.NewList()
	history.Title = "iterations"
	history.SetRect(0, 6, width, height)

	render := func() {
		ui.Render(header, best, history)
	}
	render()

	events := ui.PollEvents()
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case e := <-events:
			switch e.ID {
			case "q", "<C-c>":
				return nil
			case "<Resize>":
				payload := e.Payload.(ui.Resize)
				header.SetRect(0, 0, payload.Width, 3)
				best.SetRect(0, 3, payload.Width, 6)
				history.SetRect(0, 6, payload.Width, payload.Height)
				render()
			}

		case report, ok := <-ctx.Reports:
			if !ok {
				return nil
			}

			line := fmt.Sprintf("depth %2d  score %-8s  nodes %9d  nps %8.f  pv %s",
				report.Depth, report.Score, report.Nodes, report.Nps, report.PV)
			line = runewidth.Truncate(line, width-2, "…")

			history.Rows = append(history.Rows, line)
			history.ScrollBottom()

			best.Text = fmt.Sprintf("depth %d | score %s | pv %s", report.Depth, report.Score, report.PV)
			render()

		case <-ticker.C:
			// redraw periodically so the dashboard doesn't look frozen
			// between iterations on a slow search
			render()

		case <-done:
			// search finished; stop selecting on it so the closed
			// channel doesn't spin the loop, but keep the dashboard up
			// so the final result stays on screen until the user quits
			done = nil
			best.Title = "final result"
			render()
		}
	}
}
