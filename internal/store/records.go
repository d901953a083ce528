package store

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Match reports whether the record satisfies every field of the
// predicate. A predicate value is either a literal compared for
// equality or {"$in": [...]} matching any listed value. Fields absent
// from the record never match.
func Match(rec Record, where Record) bool {
	for field, want := range where {
		got, ok := rec[field]
		if !ok {
			return false
		}
		if in, ok := inValues(want); ok {
			if !containsValue(in, got) {
				return false
			}
			continue
		}
		if !equalValue(got, want) {
			return false
		}
	}
	return true
}

func inValues(v any) ([]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	list, ok := m["$in"]
	if !ok {
		return nil, false
	}
	vals, ok := list.([]any)
	return vals, ok
}

func containsValue(vals []any, got any) bool {
	for _, v := range vals {
		if equalValue(got, v) {
			return true
		}
	}
	return false
}

// equalValue compares two JSON-decoded scalars. Numbers decode as
// float64 on both sides, so direct comparison is enough; everything
// else falls back to string form.
func equalValue(a, b any) bool {
	if af, aok := a.(float64); aok {
		if bf, bok := b.(float64); bok {
			return af == bf
		}
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}

// SortByKey stable-sorts the records by the given field; a "-" prefix
// sorts descending. An empty key keeps the input order.
func SortByKey(recs []Record, sortKey string) {
	if sortKey == "" {
		return
	}
	desc := strings.HasPrefix(sortKey, "-")
	field := strings.TrimPrefix(sortKey, "-")
	sort.SliceStable(recs, func(i, j int) bool {
		less := lessValue(recs[i][field], recs[j][field])
		if desc {
			return lessValue(recs[j][field], recs[i][field])
		}
		return less
	})
}

// lessValue orders numbers numerically and timestamps chronologically.
// RFC 3339 fractions are variable-width (RFC3339Nano strips trailing
// zeros), so timestamp strings must be parsed, not compared byte-wise.
func lessValue(a, b any) bool {
	if af, aok := a.(float64); aok {
		if bf, bok := b.(float64); bok {
			return af < bf
		}
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		if at, err := time.Parse(time.RFC3339Nano, as); err == nil {
			if bt, err := time.Parse(time.RFC3339Nano, bs); err == nil {
				return at.Before(bt)
			}
		}
		return as < bs
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}
