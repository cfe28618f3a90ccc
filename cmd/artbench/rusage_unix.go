//go:build unix

package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// reportMemory prints the process's peak resident set alongside the Go
// heap, so arena growth shows up even though it bypasses the usual heap
// accounting.
func reportMemory() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	fmt.Printf("heap in use: %d KiB\n", ms.HeapInuse/1024)

	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err == nil {
		fmt.Printf("max rss: %d KiB\n", maxRSSKiB(ru.Maxrss))
	}
}

// maxRSSKiB normalizes Maxrss, which darwin reports in bytes and linux in
// kilobytes.
func maxRSSKiB(maxrss int64) int64 {
	if runtime.GOOS == "darwin" {
		return maxrss / 1024
	}

	return maxrss
}
