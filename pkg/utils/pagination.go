package utils

const (
	defaultLimit = 20
	maxLimit     = 100
)

// NormalizePage clamps caller-supplied pagination to sane bounds.
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
