package types_test

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	types "github.com/okian/campus/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestProfileShape(t *testing.T) {
	Convey("Given a profile view", t, func() {
		p := types.Profile{
			Card:         types.Card{ID: "mit", Name: "MIT"},
			InComparison: true,
		}

		Convey("When it is encoded", func() {
			var out map[string]any
			data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(p)
			So(err, ShouldBeNil)
			So(jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &out), ShouldBeNil)

			Convey("Then card fields should sit at the top level", func() {
				So(out["id"], ShouldEqual, "mit")
				So(out["name"], ShouldEqual, "MIT")
				So(out["in_comparison"], ShouldEqual, true)
				So(out, ShouldNotContainKey, "Card")
			})
		})
	})
}
