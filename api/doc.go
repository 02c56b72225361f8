// Package api
// Author: momentics <momentics@gmail.com>
//
// Contract layer for the segbuf library.
//
// Defines the block pool capability, the pull-reader and push-writer
// protocols every producer and consumer is written against, and the
// sentinel errors shared across implementations. Implementations live in
// pool/ and buffer/; this package carries no state of its own.
package api
