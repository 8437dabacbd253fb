package display

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	prettyjson "github.com/hokaccha/go-prettyjson"
	"github.com/pkg/errors"
)

// Render prints a JSON document to w as an indented, optionally coloured, tree.
// It only reads body.
func Render(w io.Writer, body []byte, colour bool) error {
	f := prettyjson.NewFormatter()
	f.Indent = 4
	f.KeyColor = color.New(color.FgBlue, color.Bold)
	f.StringColor = color.New(color.FgGreen)
	f.BoolColor = color.New(color.FgYellow)
	f.NumberColor = color.New(color.FgCyan)
	f.NullColor = color.New(color.FgHiBlack)
	f.DisabledColor = !colour

	out, err := f.Format(body)
	if err != nil {
		return errors.Wrap(err, "failed to format metadata document for display")
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// Summary prints the line reporting the created file
func Summary(w io.Writer, path string, colour bool) {
	c := color.New(color.FgGreen, color.Bold)
	if !colour {
		c.DisableColor()
	}
	c.Fprintf(w, "Datadoc JSON file '%s' created.\n", path)
}
