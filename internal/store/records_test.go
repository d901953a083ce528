package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	rec := Record{"email": "ana@x", "user_type": "candidate", "age": float64(23)}

	require.True(t, Match(rec, Record{}))
	require.True(t, Match(rec, Record{"email": "ana@x"}))
	require.True(t, Match(rec, Record{"email": "ana@x", "user_type": "candidate"}))
	require.False(t, Match(rec, Record{"email": "bruno@x"}))
	require.False(t, Match(rec, Record{"email": "ana@x", "user_type": "recruiter"}))

	// Fields the record does not carry never match.
	require.False(t, Match(rec, Record{"missing": "x"}))
}

func TestMatchIn(t *testing.T) {
	rec := Record{"email": "bruno@x"}

	require.True(t, Match(rec, Record{"email": map[string]any{"$in": []any{"ana@x", "bruno@x"}}}))
	require.False(t, Match(rec, Record{"email": map[string]any{"$in": []any{"ana@x"}}}))
	require.False(t, Match(rec, Record{"email": map[string]any{"$in": []any{}}}))
}

func TestMatchNumbers(t *testing.T) {
	rec := Record{"price": float64(49.9)}
	require.True(t, Match(rec, Record{"price": float64(49.9)}))
	require.False(t, Match(rec, Record{"price": float64(50)}))
}

func TestSortByKey(t *testing.T) {
	recs := []Record{
		{"id": "b", "created_date": "2026-03-02T10:00:00Z"},
		{"id": "a", "created_date": "2026-03-01T10:00:00Z"},
		{"id": "c", "created_date": "2026-03-03T10:00:00Z"},
	}

	SortByKey(recs, "created_date")
	require.Equal(t, "a", recs[0]["id"])
	require.Equal(t, "c", recs[2]["id"])

	SortByKey(recs, "-created_date")
	require.Equal(t, "c", recs[0]["id"])
	require.Equal(t, "a", recs[2]["id"])
}

func TestSortByKeyVariableWidthFractions(t *testing.T) {
	// RFC3339Nano drops trailing fractional zeros, so ".12345" sorts
	// before ".1234" byte-wise even though it is the later instant.
	recs := []Record{
		{"id": "older", "created_date": "2026-01-01T00:00:00.1234Z"},
		{"id": "newer", "created_date": "2026-01-01T00:00:00.12345Z"},
		{"id": "newest", "created_date": "2026-01-01T00:00:00.2Z"},
	}

	SortByKey(recs, "-created_date")
	require.Equal(t, "newest", recs[0]["id"])
	require.Equal(t, "newer", recs[1]["id"])
	require.Equal(t, "older", recs[2]["id"])

	SortByKey(recs, "created_date")
	require.Equal(t, "older", recs[0]["id"])
	require.Equal(t, "newer", recs[1]["id"])
	require.Equal(t, "newest", recs[2]["id"])
}

func TestSortByKeyEmptyKeepsOrder(t *testing.T) {
	recs := []Record{{"id": "b"}, {"id": "a"}}
	SortByKey(recs, "")
	require.Equal(t, "b", recs[0]["id"])
	require.Equal(t, "a", recs[1]["id"])
}

func TestSortByKeyIsStable(t *testing.T) {
	recs := []Record{
		{"id": "first", "rank": float64(1)},
		{"id": "second", "rank": float64(1)},
		{"id": "third", "rank": float64(0)},
	}
	SortByKey(recs, "rank")
	require.Equal(t, "third", recs[0]["id"])
	require.Equal(t, "first", recs[1]["id"])
	require.Equal(t, "second", recs[2]["id"])
}

func TestSortByKeyNumeric(t *testing.T) {
	recs := []Record{
		{"id": "cheap", "price": float64(9.9)},
		{"id": "pricey", "price": float64(100)},
		{"id": "free", "price": float64(0)},
	}
	// Numeric compare, not lexicographic: 9.9 < 100.
	SortByKey(recs, "price")
	require.Equal(t, "free", recs[0]["id"])
	require.Equal(t, "cheap", recs[1]["id"])
	require.Equal(t, "pricey", recs[2]["id"])
}
