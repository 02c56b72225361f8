// File: pool/default.go
// Author: momentics <momentics@gmail.com>

package pool

import (
	"sync"

	"github.com/momentics/segbuf/api"
)

var (
	defaultOnce sync.Once
	defaultPool *SlabPool
)

// Default returns a process-wide SlabPool so unrelated writers and readers
// reuse the same free lists instead of fragmenting allocations.
func Default() api.BlockPool {
	defaultOnce.Do(func() {
		defaultPool = NewSlabPool()
	})
	return defaultPool
}
