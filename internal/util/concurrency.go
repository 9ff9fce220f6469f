// Package util holds small concurrency helpers shared by the driver and its
// tests.
package util

import "sync"

// Go runs f on its own goroutine, registered with wg.
func Go(wg *sync.WaitGroup, f func()) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		f()
	}()
}
