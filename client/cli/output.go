package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// Response is the JSON shape of every command's output.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Meta    any    `json:"meta,omitempty"`
}

// printer writes command results as text tables or JSON.
type printer struct {
	format string
	w      io.Writer
}

func newPrinter(opts *RootOptions, w io.Writer) *printer {
	return &printer{format: opts.Format, w: w}
}

func (p *printer) json() bool {
	return p.format == "json"
}

// result prints a single-record result. In text mode only the server
// message is shown.
func (p *printer) result(message string, data any) error {
	if p.json() {
		return json.NewEncoder(p.w).Encode(Response{Status: "ok", Message: message, Data: data})
	}
	_, err := fmt.Fprintln(p.w, message)
	return err
}

// table prints rows under header in text mode, or data and meta in JSON.
func (p *printer) table(header string, rows []string, footer string, data, meta any) error {
	if p.json() {
		return json.NewEncoder(p.w).Encode(Response{Status: "ok", Data: data, Meta: meta})
	}
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, r := range rows {
		fmt.Fprintln(tw, r)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if footer != "" {
		_, err := fmt.Fprintln(p.w, footer)
		return err
	}
	return nil
}
