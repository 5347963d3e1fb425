// SPDX-License-Identifier: MIT

// Package render writes CLI results as pterm tables, JSON or YAML.
//
// A result type implements View: its exported fields (with json/yaml tags)
// are what the structured formats emit, and Tables is what the terminal
// format draws.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat for anything but table/json/yaml.
var ErrUnknownFormat = errors.New("render: unknown output format")

// ParseFormat maps a flag or config value to a Format. Matching is
// case-insensitive; "" and "text" mean table, "yml" means yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table", "text":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q (want table, json or yaml)", s)
	}
}

// Table is one titled grid of cells. Header may be empty.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
}

// View is anything the CLI can print.
type View interface {
	Tables() []Table
}

// Write encodes v to w in the given format.
func Write(w io.Writer, format Format, v View) error {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode json")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		_, err = w.Write(data)
		return err
	case FormatTable:
		return writeTables(w, v.Tables())
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", string(format))
	}
}

func writeTables(w io.Writer, tables []Table) error {
	for i, t := range tables {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if t.Title != "" {
			if _, err := fmt.Fprintln(w, pterm.LightCyan(t.Title)); err != nil {
				return err
			}
		}

		data := pterm.TableData{}
		if len(t.Header) > 0 {
			data = append(data, t.Header)
		}
		data = append(data, t.Rows...)
		if len(data) == 0 {
			continue
		}

		out, err := pterm.DefaultTable.
			WithHasHeader(len(t.Header) > 0).
			WithData(data).
			Srender()
		if err != nil {
			return errors.Wrapf(err, "failed to render table %q", t.Title)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}

	return nil
}
