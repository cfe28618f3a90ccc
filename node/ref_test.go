package node

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/flier/art/arena"
)

func TestRef(t *testing.T) {
	Convey("Given an empty reference", t, func() {
		var ref Ref[int]

		So(ref.Empty(), ShouldBeTrue)
		So(ref.Type(), ShouldEqual, TypeUnknown)
		So(ref.IsLeaf(), ShouldBeFalse)
		So(ref.IsNode(), ShouldBeFalse)
		So(ref.AsLeaf(), ShouldBeNil)
		So(ref.AsNode(), ShouldBeNil)
	})

	Convey("Given a leaf reference", t, func() {
		a := new(arena.Arena)
		l := NewLeaf(a, []byte("hello"), 123)
		ref := l.Ref()

		So(ref.Empty(), ShouldBeFalse)
		So(ref.Type(), ShouldEqual, TypeLeaf)
		So(ref.IsLeaf(), ShouldBeTrue)
		So(ref.IsNode(), ShouldBeFalse)

		Convey("Then it untags back to the same leaf", func() {
			So(ref.AsLeaf(), ShouldEqual, l)
			So(ref.AsNode(), ShouldEqual, l)
		})
	})

	Convey("Given references to each inner variant", t, func() {
		a := new(arena.Arena)

		n4 := arena.New(a, Node4[int]{})
		n16 := arena.New(a, Node16[int]{})
		n48 := arena.New(a, Node48[int]{})
		n256 := arena.New(a, Node256[int]{})

		So(n4.Ref().Type(), ShouldEqual, TypeNode4)
		So(n16.Ref().Type(), ShouldEqual, TypeNode16)
		So(n48.Ref().Type(), ShouldEqual, TypeNode48)
		So(n256.Ref().Type(), ShouldEqual, TypeNode256)

		Convey("Then each is an inner node but not a leaf", func() {
			for _, ref := range []Ref[int]{n4.Ref(), n16.Ref(), n48.Ref(), n256.Ref()} {
				So(ref.IsNode(), ShouldBeTrue)
				So(ref.IsLeaf(), ShouldBeFalse)
				So(ref.AsLeaf(), ShouldBeNil)
			}
		})

		Convey("Then each untags to its concrete type", func() {
			So(n4.Ref().AsNode(), ShouldEqual, n4)
			So(n16.Ref().AsNode(), ShouldEqual, n16)
			So(n48.Ref().AsNode(), ShouldEqual, n48)
			So(n256.Ref().AsNode(), ShouldEqual, n256)
		})
	})

	Convey("Given a reference slot", t, func() {
		a := new(arena.Arena)

		l1 := NewLeaf(a, []byte("a"), 1)
		l2 := NewLeaf(a, []byte("b"), 2)

		ref := l1.Ref()

		Convey("When replacing the node", func() {
			old := ref.Replace(l2)

			So(old, ShouldEqual, l1)
			So(ref.AsLeaf(), ShouldEqual, l2)
		})

		Convey("When clearing the slot", func() {
			old := ref.Replace(nil)

			So(old, ShouldEqual, l1)
			So(ref.Empty(), ShouldBeTrue)
		})
	})
}
