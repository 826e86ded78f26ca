package presentation

import (
	"fmt"
	"io"
	"time"

	"rawbatch/internal/app"
	"rawbatch/internal/domain"
)

type Printer struct {
	Writer  io.Writer
	Verbose bool
}

var categoryLabels = map[domain.Category]string{
	domain.CategoryTotal:   "Total",
	domain.CategoryDecoded: "Decoded",
	domain.CategoryEncoded: "Encoded",
	domain.CategoryCopied:  "Copied",
	domain.CategoryMoved:   "Moved",
	domain.CategoryIgnored: "Ignored",
	domain.CategoryErrors:  "Encountered errors on",
}

func (p Printer) PrintPlan(plan app.Plan) {
	fmt.Fprintf(p.Writer, "Found %d raw, %d image and %d other entries in %s\n", plan.RawCount, plan.ImageCount, plan.OtherCount, plan.InputBase)
}

// PrintSummary writes one line per category. With several workers the summed
// time is divided by the worker count and the line says "approx.".
func (p Printer) PrintSummary(report domain.Report) {
	fmt.Fprintln(p.Writer)
	for _, line := range report.Lines {
		fmt.Fprintln(p.Writer, formatLine(line, report.Workers))
	}
}

func formatLine(line domain.ReportLine, workers int) string {
	label := categoryLabels[line.Category]
	if workers > 1 {
		return fmt.Sprintf("%s %d files in approx. %s (avg %s per file)", label, line.Count, FormatDuration(line.Approx), FormatDuration(line.Mean))
	}
	return fmt.Sprintf("%s %d files in %s (avg %s per file)", label, line.Count, FormatDuration(line.Sum), FormatDuration(line.Mean))
}

// PrintInspection writes the short description shown by the info command.
func (p Printer) PrintInspection(res app.Inspection) {
	fmt.Fprintf(p.Writer, "File: %s\n", res.Path)
	fmt.Fprintf(p.Writer, "\tSize: %dx%d\n", res.Pixels.Width, res.Pixels.Height)
	if res.Camera.Make != "" || res.Camera.Model != "" {
		fmt.Fprintf(p.Writer, "\tTaken with %q\n", cameraName(res.Camera))
	}
	fmt.Fprintf(p.Writer, "\tDecoded in %s\n", FormatDuration(res.DecodeTime))
}

func cameraName(info domain.CameraInfo) string {
	switch {
	case info.Make == "":
		return info.Model
	case info.Model == "":
		return info.Make
	default:
		return info.Make + " " + info.Model
	}
}

// FormatDuration renders d as "Xm Ys Zms", leaving out zero minutes and
// seconds. Milliseconds are always shown.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int64(d / time.Minute)
	secs := int64(d/time.Second) % 60
	millis := int64(d/time.Millisecond) % 1000

	out := ""
	if mins > 0 {
		out += fmt.Sprintf("%dm ", mins)
	}
	if secs > 0 {
		out += fmt.Sprintf("%ds ", secs)
	}
	return out + fmt.Sprintf("%dms", millis)
}
