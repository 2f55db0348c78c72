// Copyright 2026 The AMQuery Authors
// SPDX-License-Identifier: Apache-2.0

package sweep

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Summary collects per-size outcomes in sweep order.
type Summary []Outcome

// Failed returns the number of failed sizes.
func (s Summary) Failed() int {
	var n int
	for _, o := range s {
		if o.Failed() {
			n++
		}
	}
	return n
}

// Write renders a per-size result table followed by a totals line.
func (s Summary) Write(w io.Writer) error {
	for _, o := range s {
		var err error
		if o.Failed() {
			_, err = fmt.Fprintf(w, "%s %d: %s: %v\n", color.RedString("✗"), o.Size, o.Stage, o.Err)
		} else {
			_, err = fmt.Fprintf(w, "%s %d: %d/%d sampled, log %s\n", color.GreenString("✓"), o.Size, o.Sampled, o.Candidates, o.LogPath)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d of %d build sizes succeeded\n", len(s)-s.Failed(), len(s))
	return err
}
