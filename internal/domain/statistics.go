package domain

import "time"

// StatisticsItem counts one category and keeps every observed duration.
// Count equals len(Times) for categories that record durations; Ignored and
// Errors usually count without one.
type StatisticsItem struct {
	Count int
	Times []time.Duration
}

// Record counts one occurrence that took d.
func (i *StatisticsItem) Record(d time.Duration) {
	i.Times = append(i.Times, d)
	i.Count++
}

// Inc counts one occurrence without a duration.
func (i *StatisticsItem) Inc() {
	i.Count++
}

func (i StatisticsItem) Sum() time.Duration {
	var total time.Duration
	for _, d := range i.Times {
		total += d
	}
	return total
}

// Mean is zero when no durations were recorded.
func (i StatisticsItem) Mean() time.Duration {
	if len(i.Times) == 0 {
		return 0
	}
	return i.Sum() / time.Duration(len(i.Times))
}

// Merge returns a new item; neither input's slice is shared with the result.
func (i StatisticsItem) Merge(other StatisticsItem) StatisticsItem {
	var times []time.Duration
	if n := len(i.Times) + len(other.Times); n > 0 {
		times = make([]time.Duration, 0, n)
		times = append(times, i.Times...)
		times = append(times, other.Times...)
	}
	return StatisticsItem{Count: i.Count + other.Count, Times: times}
}

// Statistics holds one item per category.
type Statistics struct {
	Decoded StatisticsItem
	Encoded StatisticsItem
	Copied  StatisticsItem
	Moved   StatisticsItem
	Ignored StatisticsItem
	Errors  StatisticsItem
	Total   StatisticsItem
}

// Merge combines two aggregates category by category. It is associative and
// commutative up to the order of durations inside each category.
func (s Statistics) Merge(other Statistics) Statistics {
	return Statistics{
		Decoded: s.Decoded.Merge(other.Decoded),
		Encoded: s.Encoded.Merge(other.Encoded),
		Copied:  s.Copied.Merge(other.Copied),
		Moved:   s.Moved.Merge(other.Moved),
		Ignored: s.Ignored.Merge(other.Ignored),
		Errors:  s.Errors.Merge(other.Errors),
		Total:   s.Total.Merge(other.Total),
	}
}

// Fold merges parts left to right starting from the empty aggregate.
func Fold(parts ...Statistics) Statistics {
	var acc Statistics
	for _, part := range parts {
		acc = acc.Merge(part)
	}
	return acc
}

// Jobs is the number of jobs accounted for. A parse job counts once even
// though it touches both Decoded and Encoded.
func (s Statistics) Jobs() int {
	return s.Decoded.Count + s.Copied.Count + s.Moved.Count + s.Ignored.Count + s.Errors.Count
}

// Category names one StatisticsItem in a report.
type Category string

const (
	CategoryTotal   Category = "total"
	CategoryDecoded Category = "decoded"
	CategoryEncoded Category = "encoded"
	CategoryCopied  Category = "copied"
	CategoryMoved   Category = "moved"
	CategoryIgnored Category = "ignored"
	CategoryErrors  Category = "errors"
)

// ReportLine summarises one category. Approx is Sum divided by the worker
// count, an estimate of the wall-clock share of that category.
type ReportLine struct {
	Category Category
	Count    int
	Sum      time.Duration
	Mean     time.Duration
	Approx   time.Duration
}

type Report struct {
	Workers int
	Lines   []ReportLine
}

// Report summarises s for a run that used the given number of workers.
func (s Statistics) Report(workers int) Report {
	if workers < 1 {
		workers = 1
	}
	items := []struct {
		category Category
		item     StatisticsItem
	}{
		{CategoryTotal, s.Total},
		{CategoryDecoded, s.Decoded},
		{CategoryEncoded, s.Encoded},
		{CategoryCopied, s.Copied},
		{CategoryMoved, s.Moved},
		{CategoryIgnored, s.Ignored},
		{CategoryErrors, s.Errors},
	}

	report := Report{Workers: workers, Lines: make([]ReportLine, 0, len(items))}
	for _, entry := range items {
		sum := entry.item.Sum()
		report.Lines = append(report.Lines, ReportLine{
			Category: entry.category,
			Count:    entry.item.Count,
			Sum:      sum,
			Mean:     entry.item.Mean(),
			Approx:   sum / time.Duration(workers),
		})
	}
	return report
}

// Line returns the report line for a category.
func (r Report) Line(category Category) (ReportLine, bool) {
	for _, line := range r.Lines {
		if line.Category == category {
			return line, true
		}
	}
	return ReportLine{}, false
}
