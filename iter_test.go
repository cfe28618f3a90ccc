//go:build go1.23

package art_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/art"
	"github.com/flier/art/arena"
)

func TestAll(t *testing.T) {
	Convey("Given a populated tree", t, func() {
		a := new(arena.Arena)
		tree := &art.Tree[int]{}

		for i, k := range []string{"cherry", "apple", "banana"} {
			tree.Insert(a, []byte(k), i)
		}

		Convey("When ranging over All", func() {
			var keys []string

			for key, value := range tree.All() {
				keys = append(keys, string(key))
				So(value, ShouldNotBeNil)
			}

			So(keys, ShouldResemble, []string{"apple", "banana", "cherry"})
		})

		Convey("When breaking out early", func() {
			var keys []string

			for key := range tree.All() {
				keys = append(keys, string(key))
				if len(keys) == 2 {
					break
				}
			}

			So(keys, ShouldResemble, []string{"apple", "banana"})
		})
	})
}

func TestAllPrefix(t *testing.T) {
	Convey("Given a populated tree", t, func() {
		a := new(arena.Arena)
		tree := &art.Tree[int]{}

		for i, k := range []string{"user:1", "user:2", "session:9", "user:10"} {
			tree.Insert(a, []byte(k), i)
		}

		Convey("When ranging over a prefix", func() {
			var keys []string

			for key := range tree.AllPrefix([]byte("user:")) {
				keys = append(keys, string(key))
			}

			So(keys, ShouldResemble, []string{"user:1", "user:10", "user:2"})
		})

		Convey("When the prefix matches nothing", func() {
			count := 0

			for range tree.AllPrefix([]byte("order:")) {
				count++
			}

			So(count, ShouldEqual, 0)
		})
	})
}
