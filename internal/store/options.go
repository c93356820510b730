package store

import "fmt"

// DeletePolicy decides what happens to favorites when the row they point at
// is deleted.
type DeletePolicy string

const (
	DeleteOrphan  DeletePolicy = "orphan"
	DeleteCascade DeletePolicy = "cascade"
)

func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch p := DeletePolicy(s); p {
	case DeleteOrphan, DeleteCascade:
		return p, nil
	case "":
		return DeleteOrphan, nil
	default:
		return "", fmt.Errorf("unknown delete policy %q (want orphan or cascade)", s)
	}
}

type Options struct {
	DeletePolicy DeletePolicy
	// UniqueFavorites rejects a second favorite of the same target by the
	// same user.
	UniqueFavorites bool
}
