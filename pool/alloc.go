// File: pool/alloc.go
// Author: momentics <momentics@gmail.com>
//
// Heap-backed allocation shared by every platform; released blocks are
// simply dropped for the garbage collector.

package pool

func heapAlloc(size int) []byte { return make([]byte, size) }

func heapRelease(_ []byte) {}
