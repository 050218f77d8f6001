// Package output renders query views for the terminal.
//
// A query.View carries resolved header cells with style hints, per
// column alignment hints and the final rows of string cells. Renderers
// turn it into text; they never filter, sort or reorder.
//
// # Supported Modes
//
//   - Pretty table: borderless columns separated by "|", a rule under
//     the header, header cells bold and cyan when colour is enabled
//
// Any other mode is rejected by New with query.ErrUnsupportedOutputMode.
//
// # Basic Usage
//
//	renderer := output.NewTableRenderer(os.Stdout, output.TableOptions{Color: true})
//	if err := renderer.Render(view); err != nil {
//	    log.Fatal(err)
//	}
//
// # Using as String
//
// Write to a bytes buffer to get string output:
//
//	var buf bytes.Buffer
//	renderer := output.NewTableRenderer(&buf, output.TableOptions{})
//	if err := renderer.Render(view); err != nil {
//	    log.Fatal(err)
//	}
//	text := buf.String()
//
// # Cell Width
//
// TableOptions.MaxWidth truncates long cells by display width
// (github.com/mattn/go-runewidth), so wide characters count as two
// columns and the "..." tail stays within the limit.
//
// The table layout itself is done by github.com/olekukonko/tablewriter.
package output
