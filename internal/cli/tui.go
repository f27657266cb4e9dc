package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/funnelchart/pkg/errors"
	"github.com/matzehuels/funnelchart/pkg/render/funnel/config"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// chartEntry describes one chart file found in a directory.
type chartEntry struct {
	Path     string
	Name     string
	Format   string
	Sections int
	Labeled  bool
	Err      error // decode or resolve failure; the entry cannot be selected
}

// findCharts lists the .toml and .json files directly inside dir, sorted by
// name, and decodes each one to describe it.
func findCharts(dir string) ([]chartEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read directory %s", dir)
	}

	var charts []chartEntry
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if errors.ValidateChartFilename(path) != nil {
			continue
		}
		entry := chartEntry{Path: path, Name: e.Name(), Format: config.FormatFromPath(path)}
		settings, err := config.Load(path)
		if err == nil {
			var cfg config.Config
			cfg, err = config.Resolve(settings)
			entry.Sections = cfg.Count()
			entry.Labeled = cfg.HasLabels()
		}
		entry.Err = err
		charts = append(charts, entry)
	}

	sort.Slice(charts, func(i, j int) bool { return charts[i].Name < charts[j].Name })
	return charts, nil
}

// =============================================================================
// ChartListModel - Interactive chart file selection
// =============================================================================

// ChartListModel is the bubbletea model for picking a chart file.
type ChartListModel struct {
	Charts   []chartEntry
	Cursor   int
	Selected *chartEntry
	Height   int
	Offset   int
}

// NewChartListModel creates a list model over charts.
func NewChartListModel(charts []chartEntry) ChartListModel {
	return ChartListModel{Charts: charts, Height: 15}
}

func (m ChartListModel) Init() tea.Cmd {
	return nil
}

func (m ChartListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Charts)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Charts) == 0 || m.Charts[m.Cursor].Err != nil {
				return m, nil
			}
			chart := m.Charts[m.Cursor]
			m.Selected = &chart
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m ChartListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Chart"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Charts))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		c := m.Charts[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		sections, labels := "—", "—"
		if c.Err == nil {
			sections = fmt.Sprint(c.Sections)
			if c.Labeled {
				labels = "✓"
			}
		}
		status := "ok"
		if c.Err != nil {
			status = errors.UserMessage(c.Err)
		}
		rows = append(rows, []string{cursor, c.Name, c.Format, sections, labels, status})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "File", "Format", "Sections", "Labels", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Charts) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if m.Charts[idx].Err != nil {
				base = base.Foreground(colorDim)
			} else {
				base = base.Foreground(colorGreen)
			}
			if idx == m.Cursor {
				base = base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Charts))))

	return b.String()
}

// pickChart shows the chart files in dir and returns the chosen path, or ""
// when the user quits without choosing.
func pickChart(dir string) (string, error) {
	charts, err := findCharts(dir)
	if err != nil {
		return "", err
	}
	if len(charts) == 0 {
		return "", errors.New(errors.ErrCodeNotFound, "no .toml or .json chart files in %s", dir)
	}

	final, err := tea.NewProgram(NewChartListModel(charts)).Run()
	if err != nil {
		return "", fmt.Errorf("chart picker: %w", err)
	}
	m, ok := final.(ChartListModel)
	if !ok || m.Selected == nil {
		return "", nil
	}
	return m.Selected.Path, nil
}
