package agingcache

import (
	"sync"
	"time"

	"github.com/karupanerura/aging-cache/internal/panicutil"
)

// janitor periodically runs a sweep function until closed.
// It is started only when WithSweepInterval is given; by default expiration
// is detected lazily on read.
type janitor struct {
	interval time.Duration
	stop     chan struct{}
	once     sync.Once
	onError  func(error)
}

func newJanitor(interval time.Duration, onError func(error)) *janitor {
	return &janitor{
		interval: interval,
		stop:     make(chan struct{}),
		onError:  onError,
	}
}

// run ticks until close. A panic raised during a sweep (e.g. by the
// underlying cache) is captured so it cannot kill the process from a
// background goroutine; the janitor keeps ticking. The recovered panic is
// passed to the onError function, if one is set.
func (j *janitor) run(sweep func()) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := panicutil.Capture(sweep); err != nil && j.onError != nil {
				j.onError(err)
			}
		case <-j.stop:
			return
		}
	}
}

// close stops the janitor. It is safe to call more than once.
func (j *janitor) close() {
	j.once.Do(func() {
		close(j.stop)
	})
}
