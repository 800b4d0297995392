package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kris-hansen/dctl/internal/status"
)

// ProjectsTable renders one row per report, in the order given.
func ProjectsTable(reports []status.Report) string {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, []string{
			r.Project.Alias,
			r.Project.Description,
			StyledStateLabel(r.Result.State()),
			containers(r.Result),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("🐋 Alias", "📃 Description", "⚡ Status", "Containers").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

// Problems lists the configuration problems of invalid reports, or returns
// an empty string when there are none.
func Problems(reports []status.Report) string {
	var b strings.Builder
	for _, r := range reports {
		if r.Result.Valid() {
			continue
		}
		fmt.Fprintf(&b, "%s:\n", r.Project.Alias)
		for _, p := range r.Result.Problems {
			fmt.Fprintf(&b, "  ⚠ %s\n", p)
		}
	}
	return b.String()
}

func containers(r status.Result) string {
	if !r.Valid() {
		return "-"
	}
	return fmt.Sprintf("%d/%d", r.Running, r.Total)
}
