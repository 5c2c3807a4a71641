package display

import (
	"strings"
	"testing"
)

func TestTable_Render(t *testing.T) {
	SetEnabled(false)

	tbl := NewTable([]string{"Prayer", "Time"})
	tbl.AddRow([]string{"Fajr", "05:12:03"})
	tbl.AddRow([]string{"Dhuhr", "12:58:41"})

	out := tbl.Render()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, separator, 2 rows), got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Prayer") || !strings.Contains(lines[0], "Time") {
		t.Errorf("header line missing columns: %q", lines[0])
	}
	if !strings.Contains(lines[2], "Fajr") || !strings.Contains(lines[2], "05:12:03") {
		t.Errorf("first row malformed: %q", lines[2])
	}
}

func TestTable_ColumnAlignment(t *testing.T) {
	SetEnabled(false)

	tbl := NewTable([]string{"A", "B"})
	tbl.AddRow([]string{"short", "x"})
	tbl.AddRow([]string{"a-much-longer-cell", "y"})

	lines := strings.Split(strings.TrimRight(tbl.Render(), "\n"), "\n")
	// Second column should start at the same offset on every row.
	idx1 := strings.Index(lines[2], "x")
	idx2 := strings.Index(lines[3], "y")
	if idx1 != idx2 {
		t.Errorf("second column misaligned: %d vs %d", idx1, idx2)
	}
}

func TestTable_HighlightRow(t *testing.T) {
	SetEnabled(true)
	defer SetEnabled(false)

	tbl := NewTable([]string{"Prayer", "Time"})
	tbl.AddRow([]string{"Fajr", "05:12:03"})
	tbl.AddRow([]string{"Asr", "16:20:00"})
	tbl.SetHighlightRow(1)

	out := tbl.Render()
	if !strings.Contains(out, "\033[1m\033[36mAsr") {
		t.Errorf("highlighted row missing accent escape:\n%q", out)
	}
}

func TestTable_Empty(t *testing.T) {
	SetEnabled(false)

	if out := NewTable(nil).Render(); out != "" {
		t.Errorf("empty table should render to empty string, got %q", out)
	}
}
