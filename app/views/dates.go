package views

import (
	"sort"
	"time"
)

const dateLayout = "2006-01-02"

func dateKey(t time.Time) string {
	return t.Format(dateLayout)
}

func parseDate(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

// lastNDates returns the n calendar dates ending at today inclusive, oldest
// first, as YYYY-MM-DD keys. Window membership elsewhere is tested by string
// equality against these keys.
func lastNDates(today time.Time, n int) []string {
	out := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, dateKey(today.AddDate(0, 0, -i)))
	}
	return out
}

// sortByDate orders items by their date string, stable so ties keep original
// row order. Unparseable dates sort after parseable ones.
func sortByDate[T any](items []T, date func(T) string, ascending bool) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, iok := parseDate(date(out[i]))
		tj, jok := parseDate(date(out[j]))
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		if ascending {
			return ti.Before(tj)
		}
		return tj.Before(ti)
	})
	return out
}
