package output

import (
	"fmt"
	"io"

	"github.com/vegasq/tabcat/query"
)

// Renderer defines the interface for view renderers.
//
// Implementers must provide Render to write a view in their format
// and SetOutput to change the output destination.
type Renderer interface {
	// Render writes the header and rows of v
	Render(v *query.View) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// New returns the renderer for the selected mode. Only pretty output
// exists; asking for anything else fails with
// query.ErrUnsupportedOutputMode instead of degrading.
func New(pretty bool, w io.Writer, opts TableOptions) (Renderer, error) {
	if !pretty {
		return nil, fmt.Errorf("%w: non-pretty output is not implemented", query.ErrUnsupportedOutputMode)
	}
	return NewTableRenderer(w, opts), nil
}
