package model

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const (
	gridPosAlive = '#'
	gridPosDead  = '~'

	clearEscapeSequence = "\033c"
)

// TerminalRenderer draws the viewport of a generation as plain text
type TerminalRenderer struct {
	out      io.Writer
	viewport Viewport
	buf      bytes.Buffer
}

// NewTerminalRenderer creates a renderer writing frames of the given viewport to out
func NewTerminalRenderer(out io.Writer, v Viewport) *TerminalRenderer {
	return &TerminalRenderer{out: out, viewport: v}
}

// Display renders one frame and flushes it with a single write
func (r *TerminalRenderer) Display(set *LiveSet, generation uint64) error {
	r.buf.Reset()
	r.buf.WriteString(clearEscapeSequence)

	for y := range r.viewport.Height {
		for x := range r.viewport.Width {
			if set.Contains(Coord{X: int64(x), Y: int64(y)}) {
				r.buf.WriteByte(gridPosAlive)
			} else {
				r.buf.WriteByte(gridPosDead)
			}
		}
		r.buf.WriteByte('\n')
	}

	fmt.Fprintf(&r.buf, "\nGeneration: %d\nLive Cell Count: %d\n", generation, set.Len())

	if _, err := r.out.Write(r.buf.Bytes()); err != nil {
		return errors.Wrapf(err, "[Display] failed to write frame for generation: %d", generation)
	}
	return nil
}
