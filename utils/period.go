package utils

import "fmt"

// LabelScheme selects how a series point index is rendered.
type LabelScheme int

const (
	LabelDay LabelScheme = iota
	LabelWeek
	LabelMonth
	LabelYearMonth
)

// SeriesSpec is the number of points and label scheme for a chart period.
type SeriesSpec struct {
	Points int
	Scheme LabelScheme
}

var seriesSpecs = map[string]SeriesSpec{
	PeriodWeek:    {Points: 7, Scheme: LabelDay},
	PeriodMonth:   {Points: 30, Scheme: LabelDay},
	PeriodQuarter: {Points: 90, Scheme: LabelWeek},
	PeriodYear:    {Points: 365, Scheme: LabelMonth},
	PeriodAll:     {Points: 365 * 3, Scheme: LabelYearMonth},
}

// PeriodToSeriesSpec maps a period code to its series spec. Unknown codes
// fall back to ALL.
func PeriodToSeriesSpec(period string) SeriesSpec {
	if spec, ok := seriesSpecs[period]; ok {
		return spec
	}
	return seriesSpecs[PeriodAll]
}

// Label renders the label of the i-th (0-based) point.
func (s SeriesSpec) Label(i int) string {
	switch s.Scheme {
	case LabelDay:
		return fmt.Sprintf("Day %d", i+1)
	case LabelWeek:
		return fmt.Sprintf("Week %d", i/7+1)
	case LabelMonth:
		return fmt.Sprintf("Month %d", i/30+1)
	default:
		year := seriesBaseYear + i/365
		month := (i%365)/30 + 1
		if month > 12 {
			month = 12
		}
		return fmt.Sprintf("%d-%02d", year, month)
	}
}

// OpenInterestPoints is the open-interest chart length for period.
func OpenInterestPoints(period string) int {
	if period == PeriodMonth {
		return 30
	}
	return 90
}

// maxVolumePoints caps the CEX volume chart regardless of the period's hours.
const maxVolumePoints = 24

// VolumeHours is the number of hourly buckets a CEX volume period spans.
func VolumeHours(period string) int {
	switch period {
	case Period24H:
		return 24
	case Period7D:
		return 168
	default:
		return 720
	}
}

// VolumePoints is the charted length of a CEX volume period.
func VolumePoints(period string) int {
	return min(VolumeHours(period), maxVolumePoints)
}
