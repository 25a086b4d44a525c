package bearing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// WorkbookColumns is the expected header of a batch workbook. An optional
// fifteenth "name" column labels each node.
var WorkbookColumns = []string{
	"beam1_width", "beam1_depth", "beam1_dead_load", "beam1_live_load", "beam1_routing_length",
	"beam2_width", "beam2_depth", "beam2_dead_load", "beam2_live_load", "beam2_routing_length",
	"column_width", "column_depth", "base_allowable_stress", "char_depth",
}

// RowError reports a workbook row that could not be read
type RowError struct {
	Row int // 1-based sheet row
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// LoadFromFile loads bearing nodes from a .json or .xlsx file.
// Rows of a workbook that fail to parse are skipped and returned as
// *RowError values; the remaining nodes are still returned.
func LoadFromFile(path string) ([]BearingNode, []error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()

		nodes, err := LoadJSON(f)
		return nodes, nil, err
	case ".xlsx", ".xlsm":
		return LoadWorkbook(path)
	default:
		return nil, nil, fmt.Errorf("unsupported file type %q (expected .json or .xlsx)", filepath.Ext(path))
	}
}

// LoadJSON decodes a single node object or an array of nodes.
// Unknown keys are rejected so a misspelled field cannot silently read as zero.
func LoadJSON(r io.Reader) ([]BearingNode, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty node file")
	}

	if data[0] == '[' {
		var nodes []BearingNode
		if err := decodeStrict(data, &nodes); err != nil {
			return nil, fmt.Errorf("decode nodes: %w", err)
		}
		return nodes, nil
	}

	var node BearingNode
	if err := decodeStrict(data, &node); err != nil {
		return nil, fmt.Errorf("decode node: %w", err)
	}
	return []BearingNode{node}, nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("unexpected data after node definition")
	}
	return nil
}

// LoadWorkbook reads nodes from the first sheet of an Excel workbook.
// The first row is a header and is skipped.
func LoadWorkbook(path string) ([]BearingNode, []error, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("sheet %q has no node rows", sheet)
	}

	var nodes []BearingNode
	var rowErrs []error
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}
		node, err := parseNodeRow(row)
		if err != nil {
			rowErrs = append(rowErrs, &RowError{Row: i + 1, Err: err})
			continue
		}
		nodes = append(nodes, node)
	}

	return nodes, rowErrs, nil
}

func parseNodeRow(row []string) (BearingNode, error) {
	if len(row) < len(WorkbookColumns) {
		return BearingNode{}, fmt.Errorf("expected %d columns, got %d", len(WorkbookColumns), len(row))
	}

	vals := make([]float64, len(WorkbookColumns))
	for i, col := range WorkbookColumns {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return BearingNode{}, fmt.Errorf("%s: invalid number %q", col, row[i])
		}
		vals[i] = v
	}

	node := BearingNode{
		Beam1Width:          vals[0],
		Beam1Depth:          vals[1],
		Beam1DeadLoad:       vals[2],
		Beam1LiveLoad:       vals[3],
		Beam1RoutingLength:  vals[4],
		Beam2Width:          vals[5],
		Beam2Depth:          vals[6],
		Beam2DeadLoad:       vals[7],
		Beam2LiveLoad:       vals[8],
		Beam2RoutingLength:  vals[9],
		ColumnWidth:         vals[10],
		ColumnDepth:         vals[11],
		BaseAllowableStress: vals[12],
		CharDepth:           vals[13],
	}
	if len(row) > len(WorkbookColumns) {
		node.Name = strings.TrimSpace(row[len(WorkbookColumns)])
	}
	return node, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
