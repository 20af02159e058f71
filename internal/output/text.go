package output

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	indent        string
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer. Continuation lines start
// with indent.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		indent:        indent,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// TextWriter writes reports as plain text, one block per position.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteReport writes one report followed by a blank line.
func (tw *TextWriter) WriteReport(r *Report) error {
	ow := NewOutputWriter(tw.w, int(tw.cfg.Output.MaxLineLength), "    ")

	ow.WriteNoSpace(fmt.Sprintf("Position %d: %s", r.Index+1, r.FEN))
	ow.NewLine()
	if r.Error != "" {
		ow.WriteNoSpace("Error: " + r.Error)
		ow.NewLine()
		ow.NewLine()
		return nil
	}
	if r.Duplicate {
		ow.WriteNoSpace(fmt.Sprintf("Duplicate of position %d", r.DuplicateOf))
		ow.NewLine()
		ow.NewLine()
		return nil
	}

	if tw.cfg.Output.ShowBoard && r.board != nil {
		writeDiagram(tw.w, r.board)
	}

	writeLine(ow, "To move:", r.SideToMove)
	writeLine(ow, "Status:", r.Status)
	if len(r.Checkers) > 0 {
		writeList(ow, "Checkers:", r.Checkers)
	}
	if tw.cfg.Output.ShowLegalMoves {
		writeList(ow, fmt.Sprintf("Legal moves (%d):", r.MoveCount), r.LegalMoves)
	} else {
		writeLine(ow, "Legal moves:", fmt.Sprint(r.MoveCount))
	}

	sides := maps.Keys(r.Attacks)
	slices.Sort(sides)
	for _, side := range sides {
		writeList(ow, "Attacked by "+side+":", r.Attacks[side])
	}
	if r.Allowable != nil {
		writeList(ow, "Allowable:", r.Allowable)
	}
	if r.Hash != "" {
		writeLine(ow, "Hash:", r.Hash)
	}
	if r.Verify != nil {
		writeVerify(ow, r)
	}

	ow.NewLine()
	return nil
}

func writeLine(ow *OutputWriter, label, value string) {
	ow.WriteNoSpace(label)
	ow.Write(value)
	ow.NewLine()
}

func writeList(ow *OutputWriter, label string, items []string) {
	ow.WriteNoSpace(label)
	if len(items) == 0 {
		ow.Write("-")
	}
	for _, item := range items {
		ow.Write(item)
	}
	ow.NewLine()
}

func writeVerify(ow *OutputWriter, r *Report) {
	if r.Verify.OK() {
		writeLine(ow, "Verified:", fmt.Sprintf("%d positions to depth %d, no discrepancies",
			r.Verify.Positions, r.Verify.Depth))
		return
	}
	writeLine(ow, "Verified:", fmt.Sprintf("%d positions to depth %d, %d discrepancies",
		r.Verify.Positions, r.Verify.Depth, len(r.Verify.Discrepancies)))
	for _, d := range r.Verify.Discrepancies {
		ow.WriteNoSpace("    " + d.String())
		ow.NewLine()
	}
}

// writeDiagram draws the board with rank 8 at the top.
func writeDiagram(w io.Writer, board *chess.Board) {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		fmt.Fprintf(&sb, "  %d ", chess.BoardSize-row)
		for col := 0; col < chess.BoardSize; col++ {
			letter := byte('.')
			if p := board.PieceAt(chess.Sq(row, col)); p != nil {
				letter = engine.PieceLetter(p)
			}
			sb.WriteByte(' ')
			sb.WriteByte(letter)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("     a b c d e f g h\n")
	fmt.Fprint(w, sb.String())
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}
