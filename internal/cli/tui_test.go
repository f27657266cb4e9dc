package cli

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFindCharts(t *testing.T) {
	dir := t.TempDir()
	writeChart(t, dir, "b.toml", sampleChart)
	writeChart(t, dir, "a.json", `{"values": [3, 2]}`)
	writeChart(t, dir, "broken.toml", `labels = ["no values"]`)
	writeChart(t, dir, "notes.txt", "ignored")

	charts, err := findCharts(dir)
	if err != nil {
		t.Fatalf("findCharts() error: %v", err)
	}

	var names []string
	for _, c := range charts {
		names = append(names, c.Name)
	}
	if got := strings.Join(names, ","); got != "a.json,b.toml,broken.toml" {
		t.Fatalf("names = %s", got)
	}
	if charts[0].Sections != 2 || charts[0].Labeled || charts[0].Format != "json" {
		t.Errorf("a.json entry = %+v", charts[0])
	}
	if charts[1].Sections != 3 || !charts[1].Labeled {
		t.Errorf("b.toml entry = %+v", charts[1])
	}
	if charts[2].Err == nil {
		t.Error("broken.toml should carry an error")
	}
}

func TestFindChartsMissingDir(t *testing.T) {
	if _, err := findCharts(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("findCharts() on a missing directory should fail")
	}
}

var errNotAChart = errors.New("not a chart")

func TestChartListModel(t *testing.T) {
	charts := []chartEntry{
		{Name: "a.toml", Path: "a.toml", Sections: 3},
		{Name: "b.toml", Path: "b.toml", Err: errNotAChart},
		{Name: "c.toml", Path: "c.toml", Sections: 2},
	}
	var m tea.Model = NewChartListModel(charts)

	key := func(s string) tea.KeyMsg {
		switch s {
		case "down":
			return tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			return tea.KeyMsg{Type: tea.KeyEnter}
		}
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}

	// An invalid chart cannot be selected.
	m, _ = m.Update(key("down"))
	m, cmd := m.Update(key("enter"))
	if cmd != nil || m.(ChartListModel).Selected != nil {
		t.Fatal("selected an invalid chart")
	}

	m, _ = m.Update(key("j"))
	m, cmd = m.Update(key("enter"))
	if cmd == nil {
		t.Fatal("enter on a valid chart should quit")
	}
	if sel := m.(ChartListModel).Selected; sel == nil || sel.Path != "c.toml" {
		t.Errorf("Selected = %+v, want c.toml", sel)
	}

	view := m.View()
	for _, want := range []string{"Select Chart", "a.toml", "c.toml", "[3/3]"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFindChartsBundledExamples(t *testing.T) {
	charts, err := findCharts(filepath.Join("..", "..", "examples", "charts"))
	if err != nil {
		t.Fatalf("findCharts() error: %v", err)
	}
	if len(charts) != 3 {
		t.Fatalf("found %d example charts, want 3", len(charts))
	}
	for _, c := range charts {
		if c.Err != nil {
			t.Errorf("%s: %v", c.Name, c.Err)
		}
	}
}
