package model_test

import (
	"testing"

	model "github.com/okian/campus/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseRange(t *testing.T) {
	Convey("Given range strings", t, func() {
		Convey("When both halves are integers", func() {
			lo, hi := model.ParseRange("1460-1570", 800, 1600)

			Convey("Then both halves should be parsed", func() {
				So(lo, ShouldEqual, 1460)
				So(hi, ShouldEqual, 1570)
			})
		})

		Convey("When halves carry spaces and trailing text", func() {
			lo, hi := model.ParseRange(" 1200 - 1400+ ", 800, 1600)

			Convey("Then leading integers should be read", func() {
				So(lo, ShouldEqual, 1200)
				So(hi, ShouldEqual, 1400)
			})
		})

		Convey("When the value is malformed", func() {
			cases := []string{"", "N/A", "-", "abc-def", "0-0", "1300"}
			Convey("Then missing halves should take the defaults", func() {
				for _, c := range cases {
					lo, hi := model.ParseRange(c, 800, 1600)
					if c == "1300" {
						So(lo, ShouldEqual, 1300)
					} else {
						So(lo, ShouldEqual, 800)
					}
					So(hi, ShouldEqual, 1600)
				}
			})
		})
	})
}

func TestUniversity(t *testing.T) {
	Convey("Given a University record", t, func() {
		u := model.University{ID: "mit", SATRange: "1520-1580"}

		Convey("When reading SAT bounds", func() {
			lo, hi := u.SATBounds()

			Convey("Then they should match the range string", func() {
				So(lo, ShouldEqual, 1520)
				So(hi, ShouldEqual, 1580)
			})
		})

		Convey("When the SAT range is missing", func() {
			lo, hi := model.University{}.SATBounds()

			Convey("Then the SAT defaults should apply", func() {
				So(lo, ShouldEqual, model.DefaultSATMin)
				So(hi, ShouldEqual, model.DefaultSATMax)
			})
		})

		Convey("When listing application requirements", func() {
			u.ApplicationRequirements = &model.ApplicationRequirements{
				GPA:        "Required",
				Essay:      "Considered if submitted",
				TestScores: "Not required",
			}
			list := u.ApplicationRequirements.List()

			Convey("Then only populated criteria should appear in order", func() {
				So(len(list), ShouldEqual, 3)
				So(list[0].Key, ShouldEqual, "gpa")
				So(list[1].Key, ShouldEqual, "essay")
				So(list[2].Key, ShouldEqual, "testScores")
			})
		})

		Convey("When requirements are absent", func() {
			var req *model.ApplicationRequirements

			Convey("Then the list should be empty", func() {
				So(req.List(), ShouldBeEmpty)
			})
		})
	})
}
