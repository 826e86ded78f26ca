package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rawbatch/internal/domain"
	"rawbatch/internal/presentation"
)

type SummaryRow struct {
	Label string
	Value string
	Style lipgloss.Style
}

// SummaryRows turns a report into table rows, one per category.
func SummaryRows(report domain.Report) []SummaryRow {
	rows := make([]SummaryRow, 0, len(report.Lines))
	for _, line := range report.Lines {
		elapsed := line.Sum
		if report.Workers > 1 {
			elapsed = line.Approx
		}
		style := valueStyle
		switch {
		case line.Category == domain.CategoryErrors && line.Count > 0:
			style = errorValueStyle
		case line.Category == domain.CategoryDecoded && line.Count > 0:
			style = okValueStyle
		}
		rows = append(rows, SummaryRow{
			Label: strings.ToUpper(string(line.Category[:1])) + string(line.Category[1:]),
			Value: fmt.Sprintf("%d files  %s  (avg %s)", line.Count, presentation.FormatDuration(elapsed), presentation.FormatDuration(line.Mean)),
			Style: style,
		})
	}
	return rows
}

func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}

	for _, row := range rows {
		label := padRight(row.Label, labelWidth)
		value := padRight(row.Value, valueWidth)
		line := fmt.Sprintf("%s | %s", labelStyle.Render(label), row.Style.Render(value))
		lines = append(lines, line)
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
