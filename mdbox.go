package mdbox

import (
	"fmt"
	"io"
)

// DefaultCols is the column budget used when none is supplied.
const DefaultCols = 80

// RenderRequest configures Render.
type RenderRequest struct {
	Events   EventSource
	Writer   io.Writer
	Width    int
	Syntaxes Syntaxes
	Options  []RenderOption
}

// Render runs the full pipeline for one document: build the tree from the
// event stream, lay it out within the column budget, and write the styled
// rows to the writer. The tree is discarded afterwards.
func Render(req RenderRequest) error {
	if req.Events == nil {
		return fmt.Errorf("render: events is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	width := req.Width
	if width <= 0 {
		width = DefaultCols
	}
	root := Build(req.Events, width, req.Syntaxes)
	root.Layout()
	return root.RenderTo(req.Writer, req.Options...)
}
