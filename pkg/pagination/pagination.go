package pagination

const (
	// DefaultPage is the first page served when none is requested.
	DefaultPage = 1
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 50
	// MaxLimit caps how many rows any list query can request.
	MaxLimit = 100
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Page  int
	Limit int
}

// Normalized applies defaults and the maximum limit. Non-numeric input never
// reaches here; the query validator rejects it upstream.
func (p Params) Normalized() Params {
	out := p
	if out.Page <= 0 {
		out.Page = DefaultPage
	}
	if out.Limit <= 0 {
		out.Limit = DefaultLimit
	}
	if out.Limit > MaxLimit {
		out.Limit = MaxLimit
	}
	return out
}

// Offset returns the row offset for the normalized params.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages computes ceil(total/limit), returning 0 for an empty result set.
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	pages := total / int64(limit)
	if total%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
