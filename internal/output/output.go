// Package output renders node trees as text, JSON, YAML or XLSX, and writes
// the Prometheus textfile.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/zenithax-cc/hwident/pkg/node"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

var (
	ErrUnknownFormat = errors.New("output: unknown format")
	ErrUnknownColor  = errors.New("output: unknown color mode")
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML, FormatXLSX:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	case "":
		return ColorAuto, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
}

// UseColor resolves mode against w. Auto colors only terminals.
func (m ColorMode) UseColor(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

type Options struct {
	Color bool
}

func Render(w io.Writer, n *node.Node, f Format, opts Options) error {
	switch f {
	case FormatText, "":
		return NewTextPrinter(w, opts.Color).Print(n)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(n)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(n); err != nil {
			return err
		}
		return enc.Close()
	case FormatXLSX:
		return WriteXLSX(w, n)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// RenderFile renders n to path. Only ColorAlways colors a file.
func RenderFile(path string, n *node.Node, f Format, color ColorMode) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := Render(out, n, f, Options{Color: color == ColorAlways}); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
