package art_test

import (
	"fmt"

	"github.com/flier/art"
	"github.com/flier/art/arena"
)

func Example() {
	a := new(arena.Arena)
	defer a.Reset()

	t := &art.Tree[string]{}

	t.Insert(a, []byte("hello"), "world")
	t.Insert(a, []byte("hell"), "fire")

	if v := t.Search([]byte("hello")); v != nil {
		fmt.Println("hello ->", *v)
	}

	if old := t.Delete(a, []byte("hell")); old != nil {
		fmt.Println("removed", *old)
	}

	fmt.Println("size", t.Size())

	// Output:
	// hello -> world
	// removed fire
	// size 1
}

func ExampleTree_Visit() {
	a := new(arena.Arena)
	defer a.Reset()

	t := &art.Tree[int]{}

	for i, k := range []string{"romulus", "romane", "rubicon"} {
		t.Insert(a, []byte(k), i)
	}

	t.Visit(func(key []byte, value *int) bool {
		fmt.Printf("%s -> %d\n", key, *value)
		return false
	})

	// Output:
	// romane -> 1
	// romulus -> 0
	// rubicon -> 2
}

func ExampleTree_VisitPrefix() {
	a := new(arena.Arena)
	defer a.Reset()

	t := &art.Tree[int]{}

	for i, k := range []string{"user:1:name", "user:2:name", "config:ttl"} {
		t.Insert(a, []byte(k), i)
	}

	t.VisitPrefix([]byte("user:"), func(key []byte, value *int) bool {
		fmt.Printf("%s\n", key)
		return false
	})

	// Output:
	// user:1:name
	// user:2:name
}

func ExampleTree_Minimum() {
	a := new(arena.Arena)
	defer a.Reset()

	t := &art.Tree[int]{}

	t.Insert(a, []byte("banana"), 1)
	t.Insert(a, []byte("apple"), 2)
	t.Insert(a, []byte("cherry"), 3)

	fmt.Printf("%s\n", t.Minimum().Key.Raw())
	fmt.Printf("%s\n", t.Maximum().Key.Raw())

	// Output:
	// apple
	// cherry
}
