package pagination

import "testing"

func TestNormalizedDefaults(t *testing.T) {
	p := Params{}.Normalized()
	if p.Page != DefaultPage || p.Limit != DefaultLimit {
		t.Fatalf("expected defaults %d/%d, got %d/%d", DefaultPage, DefaultLimit, p.Page, p.Limit)
	}
}

func TestNormalizedCapsLimit(t *testing.T) {
	p := Params{Page: 2, Limit: 500}.Normalized()
	if p.Limit != MaxLimit {
		t.Fatalf("expected limit capped at %d, got %d", MaxLimit, p.Limit)
	}
	if p.Page != 2 {
		t.Fatalf("expected page preserved, got %d", p.Page)
	}
}

func TestOffset(t *testing.T) {
	p := Params{Page: 3, Limit: 10}
	if got := p.Offset(); got != 20 {
		t.Fatalf("expected offset 20, got %d", got)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 50, 1},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.limit); got != tc.want {
			t.Fatalf("TotalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}
