package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/zenithax-cc/hwident/pkg/node"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
)

// TextPrinter writes a node tree as indented "label: value" lines. Tables
// print one block per row, headed by the row's first attribute.
type TextPrinter struct {
	w          *bufio.Writer
	indent     int
	labelWidth int
	color      bool
}

func NewTextPrinter(w io.Writer, color bool) *TextPrinter {
	return &TextPrinter{
		w:          bufio.NewWriter(w),
		indent:     4,
		labelWidth: 28,
		color:      color,
	}
}

func (tp *TextPrinter) Print(n *node.Node) error {
	if n != nil {
		tp.printNode(n, 0)
	}
	return tp.w.Flush()
}

func (tp *TextPrinter) formatValue(a node.Attr) string {
	if !tp.color {
		return a.Value
	}

	color := tp.getColor(a)
	if color == "" {
		return a.Value
	}
	return color + a.Value + ColorReset
}

func (tp *TextPrinter) getColor(a node.Attr) string {
	switch {
	case a.Flags&node.FmtBool != 0:
		if a.Value == "Yes" {
			return ColorGreen
		}
		return ColorRed
	case a.Value == "<BAD INDEX>":
		return ColorYellow
	}
	return ""
}

func (tp *TextPrinter) printField(indent int, a node.Attr) {
	indentStr := strings.Repeat(" ", indent*tp.indent)
	fmt.Fprintf(tp.w, "%s%-*s: %s\n", indentStr, tp.labelWidth-indent*tp.indent, a.Key, tp.formatValue(a))
}

func (tp *TextPrinter) printHeader(indent int, label string) {
	indentStr := strings.Repeat(" ", indent*tp.indent)
	fmt.Fprintf(tp.w, "%s[%s]\n", indentStr, label)
}

func (tp *TextPrinter) printStructHeader(indent int, a node.Attr) {
	indentStr := strings.Repeat(" ", indent*tp.indent)
	fmt.Fprintf(tp.w, "\n%s%-*s: %s\n", indentStr, tp.labelWidth-indent*tp.indent, a.Key, tp.formatValue(a))
}

func (tp *TextPrinter) printNode(n *node.Node, indent int) {
	if n.Kind == node.Table {
		tp.printHeader(indent, n.Name)
		for _, a := range n.Attrs {
			tp.printField(indent+1, a)
		}
		for _, c := range n.Children {
			tp.printRow(c, indent+1)
		}
		return
	}

	tp.printHeader(indent, n.Name)
	for _, a := range n.Attrs {
		tp.printField(indent+1, a)
	}
	for _, c := range n.Children {
		tp.printNode(c, indent+1)
	}
}

func (tp *TextPrinter) printRow(n *node.Node, indent int) {
	if len(n.Attrs) == 0 {
		tp.printNode(n, indent)
		return
	}

	tp.printStructHeader(indent, n.Attrs[0])
	for _, a := range n.Attrs[1:] {
		tp.printField(indent+1, a)
	}
	for _, c := range n.Children {
		tp.printNode(c, indent+1)
	}
}
