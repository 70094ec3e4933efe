package main

import (
	"fmt"
	"sync"

	objectid "github.com/venlit/go-objectid"
)

// Generates IDs concurrently and verifies that every generation observed a
// distinct counter value and the same process fingerprint.
func main() {
	const (
		goroutines = 10
		perWorker  = 100_000
	)

	g, err := objectid.Default()
	if err != nil {
		panic(err)
	}
	fmt.Printf("process fingerprint: %08x\n", g.Fingerprint())

	var (
		mu       sync.Mutex
		counters = make(map[uint32]int, goroutines*perWorker)
		machines = make(map[uint32]int)
		wg       sync.WaitGroup
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]objectid.ObjectID, 0, perWorker)
			for j := 0; j < perWorker; j++ {
				local = append(local, g.Generate())
			}
			mu.Lock()
			for _, id := range local {
				counters[id.Counter()]++
				machines[id.Machine()]++
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	total := goroutines * perWorker
	fmt.Printf("generated: %d\n", total)
	fmt.Printf("distinct counter values: %d\n", len(counters))
	fmt.Printf("distinct fingerprints: %d\n", len(machines))

	duplicates := 0
	for _, n := range counters {
		if n > 1 {
			duplicates += n - 1
		}
	}
	fmt.Printf("duplicate counter observations: %d\n", duplicates)
	// generated: 1000000
	// distinct counter values: 1000000
	// distinct fingerprints: 1
	// duplicate counter observations: 0
}
