package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/zenithax-cc/hwident/pkg/node"
)

const (
	defaultSheetName = "Sheet1"
	maxSheetName     = 31
)

func cellName(col int, row int) (name string) {
	columnName, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return
	}
	name, err = excelize.JoinCellName(columnName, row)
	if err != nil {
		return
	}
	return
}

// xlsxSheets picks the nodes that get a sheet each: the children of an
// attribute-less plain root, otherwise the root itself.
func xlsxSheets(root *node.Node) []*node.Node {
	if root.Kind == node.Plain && len(root.Attrs) == 0 && len(root.Children) > 0 {
		return root.Children
	}
	return []*node.Node{root}
}

func sheetName(name string, used map[string]bool) string {
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	if name == "" {
		name = "Sheet"
	}
	candidate := name
	for i := 2; used[candidate]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		base := name
		if len(base)+len(suffix) > maxSheetName {
			base = base[:maxSheetName-len(suffix)]
		}
		candidate = base + suffix
	}
	used[candidate] = true
	return candidate
}

type xlsxWriter struct {
	f         *excelize.File
	sheet     string
	bold      int
	alignLeft int
}

// WriteXLSX writes one sheet per top-level node. Each node gets a bold title
// row, its attributes as key/value rows, and its children one column to the
// right.
func WriteXLSX(w io.Writer, root *node.Node) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	alignLeft, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{Horizontal: "left"}})
	if err != nil {
		return err
	}

	used := make(map[string]bool)
	for i, n := range xlsxSheets(root) {
		name := sheetName(n.Name, used)
		if i == 0 {
			if err := f.SetSheetName(defaultSheetName, name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}

		xw := &xlsxWriter{f: f, sheet: name, bold: bold, alignLeft: alignLeft}
		row := 1
		xw.writeNode(n, 1, &row)
		_ = f.SetColWidth(name, "A", "H", 24)
	}

	_, err = f.WriteTo(w)
	return err
}

func (xw *xlsxWriter) writeNode(n *node.Node, col int, row *int) {
	_ = xw.f.SetCellValue(xw.sheet, cellName(col, *row), n.Name)
	_ = xw.f.SetCellStyle(xw.sheet, cellName(col, *row), cellName(col, *row), xw.bold)
	*row++

	for _, a := range n.Attrs {
		_ = xw.f.SetCellValue(xw.sheet, cellName(col+1, *row), a.Key)
		_ = xw.f.SetCellValue(xw.sheet, cellName(col+2, *row), cellValue(a))
		_ = xw.f.SetCellStyle(xw.sheet, cellName(col+2, *row), cellName(col+2, *row), xw.alignLeft)
		*row++
	}
	for _, c := range n.Children {
		xw.writeNode(c, col+1, row)
	}
	if n.Kind == node.Row {
		*row++
	}
}

func cellValue(a node.Attr) any {
	if a.Flags&node.FmtNumeric != 0 {
		if v, err := strconv.ParseInt(a.Value, 10, 64); err == nil {
			return v
		}
	}
	return a.Value
}
