package domain

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

type HoursSummary struct {
	User          string        `json:"user"`
	Entries       int           `json:"entries"`
	TotalHours    int           `json:"total_hours"`
	DayTotals     WeekHours     `json:"day_totals"`
	ByCategory    []HoursBucket `json:"by_category"`
	ByWorkType    []HoursBucket `json:"by_work_type"`
	ImportedCount int           `json:"imported_entries"`
}

type HoursBucket struct {
	Name  string `json:"name"`
	Hours int    `json:"hours"`
}

func SumHours(hours WeekHours) int {
	total := 0
	for _, value := range hours {
		total += value
	}
	return total
}

// CoerceHours converts a spreadsheet cell into whole hours. Empty or
// unparseable cells become zero; fractional values are truncated.
func CoerceHours(raw string) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	if value, err := strconv.Atoi(trimmed); err == nil {
		return value
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	if value > math.MaxInt32 || value < math.MinInt32 {
		return 0
	}
	return int(value)
}

// SummarizeHours aggregates the entries of one user. Buckets are sorted by
// hours descending, then by name.
func SummarizeHours(user string, entries []Entry) HoursSummary {
	summary := HoursSummary{
		User:       user,
		ByCategory: []HoursBucket{},
		ByWorkType: []HoursBucket{},
	}
	categoryIndex := map[string]int{}
	workTypeIndex := map[string]int{}

	for _, entry := range entries {
		summary.Entries++
		summary.TotalHours += entry.Total
		for idx, value := range entry.Hours {
			summary.DayTotals[idx] += value
		}
		if entry.Imported() {
			summary.ImportedCount++
		}
		summary.ByCategory = addToBucket(summary.ByCategory, categoryIndex, entry.Category, entry.Total)
		summary.ByWorkType = addToBucket(summary.ByWorkType, workTypeIndex, entry.WorkType, entry.Total)
	}

	sortBuckets(summary.ByCategory)
	sortBuckets(summary.ByWorkType)
	return summary
}

func addToBucket(buckets []HoursBucket, index map[string]int, name string, hours int) []HoursBucket {
	if position, ok := index[name]; ok {
		buckets[position].Hours += hours
		return buckets
	}
	index[name] = len(buckets)
	return append(buckets, HoursBucket{Name: name, Hours: hours})
}

func sortBuckets(buckets []HoursBucket) {
	sort.SliceStable(buckets, func(i, j int) bool {
		if buckets[i].Hours == buckets[j].Hours {
			return buckets[i].Name < buckets[j].Name
		}
		return buckets[i].Hours > buckets[j].Hours
	})
}
