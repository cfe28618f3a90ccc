package xunsafe

import "unsafe"

// Cast reinterprets a *From as a *To.
func Cast[To, From any](p *From) *To {
	return (*To)(unsafe.Pointer(p))
}

// Add offsets p by n elements.
func Add[E any](p *E, n int) *E {
	return (*E)(unsafe.Add(unsafe.Pointer(p), uintptr(n)*unsafe.Sizeof(*p)))
}

// Sub returns the distance between p1 and p2 in elements.
//
// Both pointers must point into the same array.
func Sub[E any](p1, p2 *E) int {
	d := uintptr(unsafe.Pointer(p1)) - uintptr(unsafe.Pointer(p2))
	return int(d / unsafe.Sizeof(*p1))
}

// Clear zeroes n bytes starting at p.
func Clear(p *byte, n int) {
	b := unsafe.Slice(p, n)
	for i := range b {
		b[i] = 0
	}
}

// NoCopy triggers `go vet`'s copylocks check when a struct embedding it is
// copied by value.
type NoCopy struct{}

func (*NoCopy) Lock()   {}
func (*NoCopy) Unlock() {}
