package sqlbuilder

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()

	catalog, err := NewCatalog(
		[]string{"c.name", "p.category_id", "p.name", "p.description", "p.manufacturer", "p.is_popular", "p.is_new"},
		Predicate{Key: "category", Mode: ModeExact, Columns: []string{"c.name"}},
		Predicate{Key: "category_id", Mode: ModeExact, Columns: []string{"p.category_id"}},
		Predicate{Key: "search", Mode: ModeSubstringMulti, Columns: []string{"p.name", "p.description", "p.manufacturer", "c.name"}},
		Predicate{Key: "popular", Mode: ModeBoolFlag, Columns: []string{"p.is_popular"}},
		Predicate{Key: "new", Mode: ModeBoolFlag, Columns: []string{"p.is_new"}},
	)
	if err != nil {
		t.Fatalf("unexpected catalog error: %v", err)
	}
	return catalog
}

func testFilterQuery(t *testing.T) *FilterQuery {
	t.Helper()
	return NewFilterQuery(
		testCatalog(t),
		"SELECT p.*, c.name AS category_name FROM products p LEFT JOIN categories c ON p.category_id = c.id",
		"SELECT COUNT(*) FROM products p LEFT JOIN categories c ON p.category_id = c.id",
		"ORDER BY p.created_at DESC, p.id DESC",
	)
}

func TestNewCatalogRejectsUnknownJoinTarget(t *testing.T) {
	_, err := NewCatalog(
		[]string{"p.name"},
		Predicate{Key: "category", Mode: ModeExact, Columns: []string{"c.name"}},
	)
	if !errors.Is(err, ErrUnknownJoinTarget) {
		t.Fatalf("expected ErrUnknownJoinTarget, got %v", err)
	}
}

func TestBuildEmptyFilterSet(t *testing.T) {
	data, count, err := testFilterQuery(t).Build(Values{}, Page{Number: 1, Limit: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(data.SQL, "WHERE 1=1 ORDER BY") {
		t.Fatalf("expected tautological WHERE with no predicates, got %s", data.SQL)
	}
	if !strings.HasSuffix(count.SQL, "WHERE 1=1") {
		t.Fatalf("expected count to end with bare WHERE, got %s", count.SQL)
	}
	if len(count.Args) != 0 {
		t.Fatalf("expected no filter args, got %v", count.Args)
	}
	// limit and offset are the only data args
	if !reflect.DeepEqual(data.Args, []any{50, 0}) {
		t.Fatalf("expected args [50 0], got %v", data.Args)
	}
}

func TestBuildSubstringMultiBindsPerColumn(t *testing.T) {
	data, count, err := testFilterQuery(t).Build(Values{"search": "ibu"}, Page{Number: 1, Limit: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(count.Args) != 4 {
		t.Fatalf("expected 4 bound search params, got %d", len(count.Args))
	}
	for i, arg := range count.Args {
		if arg != "%ibu%" {
			t.Fatalf("expected arg %d to be %%ibu%%, got %v", i, arg)
		}
	}
	want := "(p.name ILIKE $1 OR p.description ILIKE $2 OR p.manufacturer ILIKE $3 OR c.name ILIKE $4)"
	if !strings.Contains(data.SQL, want) {
		t.Fatalf("expected OR-combined ILIKE clause, got %s", data.SQL)
	}
}

func TestBuildConsistencyLaw(t *testing.T) {
	values := Values{"category_id": "2", "search": "vit", "popular": "true"}
	data, count, err := testFilterQuery(t).Build(values, Page{Number: 2, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	whereStart := strings.Index(count.SQL, " WHERE ")
	if whereStart < 0 {
		t.Fatalf("count statement has no WHERE clause: %s", count.SQL)
	}
	where := count.SQL[whereStart:]
	if !strings.Contains(data.SQL, where) {
		t.Fatalf("data statement does not share the count WHERE clause\ndata:  %s\nwhere: %s", data.SQL, where)
	}

	if len(data.Args) != len(count.Args)+2 {
		t.Fatalf("expected data args to extend count args by limit+offset, got %v vs %v", data.Args, count.Args)
	}
	if !reflect.DeepEqual(data.Args[:len(count.Args)], count.Args) {
		t.Fatalf("filter args diverge: %v vs %v", data.Args[:len(count.Args)], count.Args)
	}
}

func TestBuildDeterministic(t *testing.T) {
	values := Values{"new": "true", "category": "Витамины", "search": "c"}
	fq := testFilterQuery(t)

	firstData, firstCount, err := fq.Build(values, Page{Number: 1, Limit: 25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	secondData, secondCount, err := fq.Build(values, Page{Number: 1, Limit: 25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if firstData.SQL != secondData.SQL || firstCount.SQL != secondCount.SQL {
		t.Fatal("expected byte-identical statements across builds")
	}
	if !reflect.DeepEqual(firstData.Args, secondData.Args) {
		t.Fatalf("expected identical arg order, got %v vs %v", firstData.Args, secondData.Args)
	}
}

func TestBuildPaginationBounds(t *testing.T) {
	data, _, err := testFilterQuery(t).Build(Values{}, Page{Number: 3, Limit: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(data.Args, []any{10, 20}) {
		t.Fatalf("expected limit=10 offset=20, got %v", data.Args)
	}
}

func TestBuildRejectsInvalidPagination(t *testing.T) {
	for _, page := range []Page{{Number: 0, Limit: 10}, {Number: 1, Limit: 0}, {Number: -1, Limit: -5}} {
		if _, _, err := testFilterQuery(t).Build(Values{}, page); !errors.Is(err, ErrInvalidPagination) {
			t.Fatalf("expected ErrInvalidPagination for %+v, got %v", page, err)
		}
	}
}

func TestBuildSkipsNonTruthyBoolFlag(t *testing.T) {
	_, count, err := testFilterQuery(t).Build(Values{"popular": "false", "new": "1"}, Page{Number: 1, Limit: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(count.Args) != 0 {
		t.Fatalf("expected non-truthy flags to be skipped, got args %v", count.Args)
	}
	if strings.Contains(count.SQL, "is_popular") || strings.Contains(count.SQL, "is_new") {
		t.Fatalf("expected no flag predicates, got %s", count.SQL)
	}
}

func TestBuildIgnoresUnknownKeys(t *testing.T) {
	_, count, err := testFilterQuery(t).Build(Values{"color": "red", "category_id": "2"}, Page{Number: 1, Limit: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(count.Args) != 1 || count.Args[0] != "2" {
		t.Fatalf("expected only category_id bound, got %v", count.Args)
	}
}
