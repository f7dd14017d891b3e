package keyword

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"inkwell/backend/internal/model"
)

var reportHeader = []string{"Keyword", "Volume", "Difficulty", "CPC", "Intent", "Cluster"}

func reportRow(k model.Keyword) []string {
	return []string{
		k.Keyword,
		strconv.Itoa(k.Volume),
		strconv.Itoa(k.Difficulty),
		strconv.FormatFloat(k.CPC, 'f', 2, 64),
		k.Intent,
		k.Cluster,
	}
}

// WriteCSV writes keywords as CSV with a header row.
func WriteCSV(w io.Writer, keywords []model.Keyword) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, k := range keywords {
		if err := cw.Write(reportRow(k)); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTable writes keywords as an aligned plain-text table. Column widths
// are measured in terminal cells so wide characters line up.
func WriteTable(w io.Writer, keywords []model.Keyword) error {
	rows := make([][]string, 0, len(keywords)+1)
	rows = append(rows, reportHeader)
	for _, k := range keywords {
		rows = append(rows, reportRow(k))
	}

	widths := make([]int, len(reportHeader))
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i >= 1 && i <= 3 && r > 0 {
				cells[i] = padLeft(cell, widths[i])
			} else {
				cells[i] = runewidth.FillRight(cell, widths[i])
			}
		}
		if _, err := io.WriteString(w, strings.TrimRight(strings.Join(cells, "  "), " ")+"\n"); err != nil {
			return err
		}
		if r == 0 {
			sep := make([]string, len(widths))
			for i, width := range widths {
				sep[i] = strings.Repeat("-", width)
			}
			if _, err := io.WriteString(w, strings.Join(sep, "  ")+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func padLeft(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}
