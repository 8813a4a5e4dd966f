package ui

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Row is one variable in a listing.
type Row struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// RowsFromMap returns the entries of m sorted by key.
func RowsFromMap(m map[string]string) []Row {
	rows := make([]Row, 0, len(m))
	for k, v := range m {
		rows = append(rows, Row{Key: k, Value: v})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return rows
}

// RenderTable aligns values in a column after the widest key. With color
// set, keys are styled and empty values shown as a muted marker.
func RenderTable(rows []Row, color bool) string {
	width := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.Key); w > width {
			width = w
		}
	}
	var b strings.Builder
	for _, r := range rows {
		key := runewidth.FillRight(r.Key, width)
		val := r.Value
		if color {
			key = keyStyle.Render(key)
			if val == "" {
				val = mutedStyle.Render("(empty)")
			}
		}
		b.WriteString(key)
		b.WriteString("  ")
		b.WriteString(val)
		b.WriteByte('\n')
	}
	return b.String()
}

// Change kinds reported by Diff.
const (
	Added   = "+"
	Changed = "~"
	Removed = "-"
)

// DiffRow is one variable that differs between two environments.
type DiffRow struct {
	Kind   string `json:"kind"`
	Key    string `json:"key"`
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

// Diff lists the variables added, changed or removed going from before to
// after, sorted by key.
func Diff(before, after map[string]string) []DiffRow {
	var out []DiffRow
	for k, a := range after {
		b, ok := before[k]
		switch {
		case !ok:
			out = append(out, DiffRow{Kind: Added, Key: k, After: a})
		case a != b:
			out = append(out, DiffRow{Kind: Changed, Key: k, Before: b, After: a})
		}
	}
	for k, b := range before {
		if _, ok := after[k]; !ok {
			out = append(out, DiffRow{Kind: Removed, Key: k, Before: b})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// RenderDiff prints one line per DiffRow.
func RenderDiff(rows []DiffRow, color bool) string {
	var b strings.Builder
	for _, r := range rows {
		var line string
		switch r.Kind {
		case Added:
			line = Added + " " + r.Key + "=" + r.After
			if color {
				line = addedStyle.Render(line)
			}
		case Changed:
			line = Changed + " " + r.Key + "=" + r.After + " (was " + r.Before + ")"
			if color {
				line = changedStyle.Render(line)
			}
		default:
			line = Removed + " " + r.Key
			if color {
				line = removedStyle.Render(line)
			}
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}
