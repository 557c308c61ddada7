// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/kraklabs/methodsig/internal/ui"
)

// batchProgress counts parsed lines on a terminal. The zero value is a
// no-op, so callers never check whether a bar is shown.
type batchProgress struct {
	bar *progressbar.ProgressBar
}

// newBatchProgress shows a bar on env.stderr only for interactive runs:
// stderr is a terminal, output is not JSON, -q is not set and there is
// more than one signature to parse.
func newBatchProgress(env *cmdEnv, total int) *batchProgress {
	if env.globals.Quiet || env.jsonOutput() || total < 2 || !ui.IsTerminal(env.stderr) {
		return &batchProgress{}
	}
	noColor := env.globals.NoColor || !ui.ColorSupported(env.stderr)
	return &batchProgress{bar: newProgressBar(env.stderr, total, noColor)}
}

func newProgressBar(w io.Writer, total int, noColor bool) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription("Parsing signatures"),
		progressbar.OptionSetWriter(w),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionEnableColorCodes(!noColor),
		progressbar.OptionThrottle(50*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "#",
			SaucerPadding: ".",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
}

// Step records one parsed line.
func (p *batchProgress) Step() {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

// Done clears the bar before the report is printed.
func (p *batchProgress) Done() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
