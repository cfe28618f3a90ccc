// Command artbench exercises the tree against a key corpus and reports
// per-phase timings.
//
// Usage:
//
//	artbench [-keys file] [-loops n] [-recycle]
//
// The key file holds one key per line. Without one, a mixed corpus of
// dictionary-style words and uuid-style keys is synthesized, which stresses
// both the dense-fanout and the long-shared-prefix shapes of the tree.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/dolthub/maphash"

	"github.com/flier/art"
	"github.com/flier/art/arena"
)

var (
	keyFile = flag.String("keys", "", "file with one key per line")
	loops   = flag.Int("loops", 3, "number of measured rounds")
	recycle = flag.Bool("recycle", false, "use the recycling allocator")
)

func main() {
	flag.Parse()

	keys, err := loadKeys(*keyFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "artbench: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("read %d keys\n", len(keys))

	var a arena.Allocator
	if *recycle {
		a = new(arena.Recycled)
	} else {
		a = new(arena.Arena)
	}

	for round := 0; round < *loops; round++ {
		fmt.Printf("round %d\n", round+1)
		run(a, keys)
	}

	reportMemory()
}

func run(a arena.Allocator, keys [][]byte) {
	t := &art.Tree[int]{}

	measure("insert", len(keys), func() {
		for i, k := range keys {
			t.Insert(a, k, i)
		}
	})

	if t.Size() != len(keys) {
		fmt.Fprintf(os.Stderr, "artbench: size %d after %d inserts\n", t.Size(), len(keys))
		os.Exit(1)
	}

	measure("search", len(keys), func() {
		for i, k := range keys {
			v := t.Search(k)
			if v == nil || *v != i {
				fmt.Fprintf(os.Stderr, "artbench: lost key %q\n", k)
				os.Exit(1)
			}
		}
	})

	// Fold every visited key into a checksum so the traversal cannot be
	// optimized away, and so two runs over the same corpus are comparable.
	h := maphash.NewHasher[string]()

	var visited int
	var sum uint64

	measure("iter", len(keys), func() {
		t.Visit(func(key []byte, value *int) bool {
			visited++
			sum ^= h.Hash(string(key)) + uint64(*value)
			return false
		})
	})

	fmt.Printf("  iter visited %d keys, checksum %016x\n", visited, sum)

	prefixes := samplePrefixes(keys)

	var matched int

	measure("iter-prefix", len(prefixes), func() {
		for _, p := range prefixes {
			t.VisitPrefix(p, func(key []byte, value *int) bool {
				matched++
				return false
			})
		}
	})

	fmt.Printf("  %d prefixes matched %d keys\n", len(prefixes), matched)

	if minimum, maximum := t.Minimum(), t.Maximum(); minimum != nil && maximum != nil {
		fmt.Printf("  min %q max %q\n", minimum.Key.Raw(), maximum.Key.Raw())
	}

	longSharedPrefix(a)

	measure("delete", len(keys), func() {
		for _, k := range keys {
			if t.Delete(a, k) == nil {
				fmt.Fprintf(os.Stderr, "artbench: delete missed %q\n", k)
				os.Exit(1)
			}
		}
	})

	if t.Size() != 0 {
		fmt.Fprintf(os.Stderr, "artbench: %d keys left after deleting all\n", t.Size())
		os.Exit(1)
	}

	t.Release(a)
}

// longSharedPrefix inserts two long binary keys that agree for hundreds of
// bytes, forcing a compressed edge far past the inline window and a split
// deep inside it.
func longSharedPrefix(a arena.Allocator) {
	long1 := make([]byte, 300)
	long2 := make([]byte, 300)

	r := rand.New(rand.NewSource(42))
	r.Read(long1)
	copy(long2, long1)
	long2[290] ^= 0x80

	t := &art.Tree[int]{}
	t.Insert(a, long1, 1)
	t.Insert(a, long2, 2)

	if v := t.Search(long1); v == nil || *v != 1 {
		fmt.Fprintln(os.Stderr, "artbench: long key 1 lost")
		os.Exit(1)
	}
	if v := t.Search(long2); v == nil || *v != 2 {
		fmt.Fprintln(os.Stderr, "artbench: long key 2 lost")
		os.Exit(1)
	}

	t.Release(a)
}

func measure(name string, n int, f func()) {
	start := time.Now()
	f()
	d := time.Since(start)

	rate := float64(n) / d.Seconds()
	fmt.Printf("  %-12s %10v  %12.0f keys/sec\n", name, d.Round(time.Microsecond), rate)
}

// loadKeys reads one key per line, or synthesizes a corpus when path is
// empty.
func loadKeys(path string) ([][]byte, error) {
	if path == "" {
		return synthesizeKeys(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var keys [][]byte

	s := bufio.NewScanner(f)
	s.Buffer(make([]byte, 0, 1<<20), 1<<20)
	for s.Scan() {
		if len(s.Bytes()) == 0 {
			continue
		}
		keys = append(keys, append([]byte(nil), s.Bytes()...))
	}

	return keys, s.Err()
}

// synthesizeKeys builds a deterministic mixed corpus: word-like keys with
// heavy prefix sharing and uuid-like keys with none.
func synthesizeKeys() [][]byte {
	r := rand.New(rand.NewSource(1))
	seen := make(map[string]bool)
	keys := make([][]byte, 0, 200_000)

	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, []byte(k))
		}
	}

	syllables := []string{"an", "ber", "co", "dra", "el", "for", "gra", "hu", "in", "jo", "ka", "lu", "mo", "ne", "or", "pra"}
	for i := 0; i < 100_000; i++ {
		w := ""
		for n := 2 + r.Intn(4); n > 0; n-- {
			w += syllables[r.Intn(len(syllables))]
		}
		add(w)
	}

	const hex = "0123456789abcdef"
	uuid := make([]byte, 36)
	for i := 0; i < 100_000; i++ {
		for j := range uuid {
			uuid[j] = hex[r.Intn(16)]
		}
		uuid[8], uuid[13], uuid[18], uuid[23] = '-', '-', '-', '-'
		add(string(uuid))
	}

	return keys
}

// samplePrefixes takes the first few bytes of a spread of keys.
func samplePrefixes(keys [][]byte) [][]byte {
	var prefixes [][]byte

	step := max(len(keys)/64, 1)
	for i := 0; i < len(keys); i += step {
		k := keys[i]
		prefixes = append(prefixes, k[:min(3, len(k))])
	}

	return prefixes
}
