// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error values shared across the segbuf library.

package api

import "errors"

// Sentinel errors used across the library. Most contract violations
// (negative counts, advancing past capacity) panic with a plain message at
// the offending call site; ErrPoolClosed is the one violation surfaced as
// a matchable panic value, raised by renting from a closed pool.
var (
	ErrNotRestartable  = errors.New("segbuf: source does not support restart")
	ErrPoolClosed      = errors.New("segbuf: block pool is closed")
	ErrInvalidArgument = errors.New("segbuf: invalid argument")
)
