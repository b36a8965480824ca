package reporting

import "errors"

var (
	ErrNoDealsFound = errors.New("no deals found")
)
