//go:build !unix

package main

import (
	"fmt"
	"runtime"
)

func reportMemory() {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	fmt.Printf("heap in use: %d KiB\n", ms.HeapInuse/1024)
}
