package threadx

import "github.com/hashicorp/go-multierror"

// JoinAll joins every thread in order and returns the aggregated
// failures, if any. Exit results are discarded; use Join directly when
// the result matters.
func JoinAll(threads ...*Thread) error {
	var result *multierror.Error
	for _, t := range threads {
		if _, err := t.Join(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
