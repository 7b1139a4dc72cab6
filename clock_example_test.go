package agingcache_test

import (
	"fmt"
	"time"

	agingcache "github.com/karupanerura/aging-cache"
)

func ExampleRandomizedClock() {
	base := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	fixed := agingcache.ClockFunc(func() time.Time { return base })

	// Percentage 0 never shifts the time; percentage 1 always shifts it.
	// Recording aging entries through a shifted clock makes keys written at
	// the same moment expire at different times.
	never := &agingcache.RandomizedClock{Clock: fixed, Duration: time.Minute, Percentage: 0}
	always := &agingcache.RandomizedClock{Clock: fixed, Duration: time.Minute, Percentage: 1}

	fmt.Println(never.Now().Format(time.TimeOnly))
	fmt.Println(always.Now().Format(time.TimeOnly))

	// Output:
	// 12:00:00
	// 12:01:00
}
