// internal/app/photon/errors.go
package photon

import "errors"

// ErrLookupFailed marks any hard failure talking to the place-lookup
// service: transport errors, timeouts, non-success statuses, or an
// undecodable body. An empty result list is not an error.
var ErrLookupFailed = errors.New("place lookup failed")
