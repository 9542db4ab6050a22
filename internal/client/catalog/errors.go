package catalog

import "errors"

var (
	// ErrSuperseded is returned by a Load whose result arrived after a newer
	// Load was issued. The result was discarded.
	ErrSuperseded = errors.New("load superseded by a newer request")
	// ErrFetchFailed wraps a data source failure of the latest Load.
	ErrFetchFailed = errors.New("course fetch failed")
)
