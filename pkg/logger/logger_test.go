package logger_test

import (
	"testing"

	"goalvault/pkg/logger"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)

		Convey("Then Get returns a usable logger", func() {
			So(logger.Get(), ShouldNotBeNil)
			So(logger.Named("test"), ShouldNotBeNil)
		})

		Convey("Then level strings parse as documented", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("INFO"), ShouldBeNil)
			So(logger.SetLevelString("warning"), ShouldBeNil)
			So(logger.SetLevelString("error"), ShouldBeNil)
			So(logger.SetLevelString(""), ShouldBeNil)
			So(logger.SetLevelString("loud"), ShouldNotBeNil)
		})
	})
}

func TestFieldConstructors(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		So(logger.String("k", "v").Key, ShouldEqual, "k")
		So(logger.Int("n", 3).Value, ShouldEqual, 3)
		So(logger.Uint64("id", 7).Value, ShouldEqual, uint64(7))
		So(logger.Float64("f", 1.5).Value, ShouldEqual, 1.5)
		So(logger.Any("a", []int{1}).Key, ShouldEqual, "a")
	})
}
