package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/chartgeom/pkg/dataset"
	"github.com/matzehuels/chartgeom/pkg/errors"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// isInteractive reports whether both stdin and stderr are terminals.
func isInteractive() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
}

// =============================================================================
// DatasetListModel - Interactive dataset selection
// =============================================================================

// DatasetListModel is the bubbletea model for interactive dataset selection.
type DatasetListModel struct {
	Datasets []dataset.Dataset
	Cursor   int
	Selected *dataset.Dataset
	Height   int
	Offset   int
}

// NewDatasetListModel creates a new dataset list model.
func NewDatasetListModel(datasets []dataset.Dataset) DatasetListModel {
	return DatasetListModel{
		Datasets: datasets,
		Height:   15,
	}
}

func (m DatasetListModel) Init() tea.Cmd {
	return nil
}

func (m DatasetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Datasets)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Datasets) == 0 {
				return m, nil
			}
			ds := m.Datasets[m.Cursor]
			m.Selected = &ds
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m DatasetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Dataset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Datasets))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		ds := m.Datasets[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		kind := string(ds.Kind)
		if kind == "" {
			kind = "—"
		}
		rows = append(rows, []string{cursor, ds.Name, kind, strconv.Itoa(ds.Records), ds.Title})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Dataset", "Kind", "Records", "Title").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			base := lipgloss.NewStyle()
			if col == 3 || col == 4 {
				base = base.Foreground(colorDim)
			}
			if idx == m.Cursor {
				if col != 3 && col != 4 {
					return base.Foreground(colorGreen).Bold(true)
				}
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Datasets))))

	return b.String()
}

// pickDataset shows the dataset picker on stderr and returns the choice.
func pickDataset(f *dataset.File) (dataset.Dataset, error) {
	p := tea.NewProgram(NewDatasetListModel(f.Datasets), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return dataset.Dataset{}, errors.Wrap(errors.ErrCodeInternal, err, "dataset picker")
	}
	m, ok := final.(DatasetListModel)
	if !ok || m.Selected == nil {
		return dataset.Dataset{}, errors.New(errors.ErrCodeInvalidInput, "no dataset selected")
	}
	return *m.Selected, nil
}
