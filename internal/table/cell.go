package table

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// cellText stringifies a column value for display and search. nil (a
// missing field) renders empty.
func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return fmt.Sprintf("%.0f", val)
		}
		return fmt.Sprintf("%.2f", val)
	case float32:
		return cellText(float64(val))
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format("2006-01-02")
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// numeric converts a value to float64 when it carries a number.
func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// searchRows keeps records where any column's stringified value contains
// term, case-folded. Synthetic columns (nil Value) never match.
func searchRows[T any](rows []T, cols []Column[T], term string) []T {
	needle := strings.ToLower(term)
	var out []T
	for _, r := range rows {
		for _, c := range cols {
			if c.Value == nil {
				continue
			}
			if strings.Contains(strings.ToLower(cellText(c.Value(r))), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// sortRows returns rows ordered on the column with the given key. Numbers
// compare numerically when both sides are numeric, everything else
// lexicographically on the stringified value; time values compare
// chronologically. Ties keep their original order in either direction.
func sortRows[T any](rows []T, cols []Column[T], key string, asc bool) []T {
	var value func(T) any
	for _, c := range cols {
		if c.Key == key && c.Value != nil {
			value = c.Value
			break
		}
	}
	if value == nil {
		return rows
	}
	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareCells(value(out[i]), value(out[j]))
		if asc {
			return cmp < 0
		}
		return cmp > 0
	})
	return out
}

// compareCells orders two cell values: nil sorts lowest, then numeric,
// time, and string comparison in that order of applicability.
func compareCells(a, b any) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if an, aok := numeric(a); aok {
		if bn, bok := numeric(b); bok {
			switch {
			case an < bn:
				return -1
			case an > bn:
				return 1
			}
			return 0
		}
	}
	if at, aok := a.(time.Time); aok {
		if bt, bok := b.(time.Time); bok {
			switch {
			case at.Before(bt):
				return -1
			case at.After(bt):
				return 1
			}
			return 0
		}
	}
	return strings.Compare(cellText(a), cellText(b))
}
