package pagination

const (
	// DefaultLimit is used when a caller omits the page size or sends a non-positive one.
	DefaultLimit = 20
	// MaxLimit caps the page size of every list endpoint.
	MaxLimit = 100
)

// Normalize clamps limit into [1, MaxLimit], defaulting to DefaultLimit, and
// floors offset at zero.
func Normalize(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
