package node

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPrefix(t *testing.T) {
	Convey("Given an empty prefix", t, func() {
		var p Prefix

		So(p.Empty(), ShouldBeTrue)
		So(p.Inline(), ShouldBeEmpty)
	})

	Convey("Given a prefix within the inline window", t, func() {
		var p Prefix
		p.Set([]byte("api."))

		So(p.Empty(), ShouldBeFalse)
		So(p.Len, ShouldEqual, 4)
		So(p.Inline(), ShouldResemble, []byte("api."))
	})

	Convey("Given a prefix longer than the inline window", t, func() {
		long := bytes.Repeat([]byte("x"), 25)

		var p Prefix
		p.Set(long)

		Convey("Then the true length is kept but only the window is cached", func() {
			So(p.Len, ShouldEqual, 25)
			So(p.Inline(), ShouldResemble, long[:MaxPrefixLen])
		})
	})

	Convey("Given a prefix of exactly the window size", t, func() {
		var p Prefix
		p.Set([]byte("0123456789"))

		So(p.Len, ShouldEqual, MaxPrefixLen)
		So(p.Inline(), ShouldResemble, []byte("0123456789"))
	})
}
