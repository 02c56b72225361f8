// Package sequence
// Author: momentics <momentics@gmail.com>
//
// Read-only, possibly multi-segment logical views over borrowed blocks.
//
// A Sequence never owns memory: it is a slice of segment descriptors over
// views supplied by its creator (typically a segmented buffer.Writer or an
// OwnedChain, which track ownership separately). All operations here are
// zero-copy except the staging-free utilities that say otherwise
// (DecodeText, EncodeText, AppendTo).
package sequence
