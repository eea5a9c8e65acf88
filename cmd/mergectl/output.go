package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// printer writes JSON, indented for terminals unless told otherwise.
type printer struct {
	w      io.Writer
	indent bool
}

func newPrinter(w io.Writer, format string) printer {
	p := printer{w: w}
	switch format {
	case "pretty":
		p.indent = true
	case "compact":
	default:
		if f, ok := w.(*os.File); ok {
			p.indent = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	}
	return p
}

func (p printer) print(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if p.indent {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	data = append(data, '\n')
	_, err = p.w.Write(data)
	return err
}
