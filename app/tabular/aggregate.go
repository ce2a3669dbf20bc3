package tabular

import "math"

// LabelCount is one bucket of a categorical aggregation.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CountByLabels counts records against a fixed, enumerated label set. A
// record whose value matches no label is silently excluded; it does not fall
// into an "other" bucket.
func CountByLabels[T any](records []T, value func(T) string, labels []string) []LabelCount {
	counts := make(map[string]int, len(labels))
	for _, rec := range records {
		counts[value(rec)]++
	}
	out := make([]LabelCount, 0, len(labels))
	for _, label := range labels {
		out = append(out, LabelCount{Label: label, Count: counts[label]})
	}
	return out
}

// CountDistinct counts records against the distinct values actually observed,
// in first-occurrence order, case-sensitive.
func CountDistinct[T any](records []T, value func(T) string) []LabelCount {
	counts := make(map[string]int, len(records))
	var order []string
	for _, rec := range records {
		v := value(rec)
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	out := make([]LabelCount, 0, len(order))
	for _, v := range order {
		out = append(out, LabelCount{Label: v, Count: counts[v]})
	}
	return out
}

// CountWhere counts records matching the predicate.
func CountWhere[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, rec := range records {
		if pred(rec) {
			n++
		}
	}
	return n
}

// Filter returns the records matching the predicate, preserving order.
func Filter[T any](records []T, pred func(T) bool) []T {
	var out []T
	for _, rec := range records {
		if pred(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Percent returns round(100*part/total), or def when total is zero. The
// default varies by call site; callers document theirs.
func Percent(part, total, def int) int {
	if total <= 0 {
		return def
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// RoundedMean returns the rounded mean of values, or def for an empty slice.
func RoundedMean(values []int, def int) int {
	if len(values) == 0 {
		return def
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return int(math.Round(float64(sum) / float64(len(values))))
}
