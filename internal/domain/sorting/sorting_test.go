package sorting_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/okian/campus/internal/domain/catalog"
	"github.com/okian/campus/internal/domain/i18n"
	"github.com/okian/campus/internal/domain/model"
	"github.com/okian/campus/internal/domain/sorting"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func ids(us []model.University) []string {
	return lo.Map(us, func(u model.University, _ int) string { return u.ID })
}

func TestParseKey(t *testing.T) {
	Convey("Given sort key strings", t, func() {
		Convey("Then known keys should round trip and unknown ones fall back", func() {
			So(sorting.ParseKey("name-asc"), ShouldEqual, sorting.NameAsc)
			So(sorting.ParseKey(" sat-desc "), ShouldEqual, sorting.SATDesc)
			So(sorting.ParseKey("popularity"), ShouldEqual, sorting.Default)
			So(sorting.ParseKey(""), ShouldEqual, sorting.Default)
			So(sorting.Keys(), ShouldHaveLength, 5)
		})
	})
}

func TestSort(t *testing.T) {
	en := i18n.For(i18n.English)
	ko := i18n.For(i18n.Korean)

	Convey("Given a small set of records", t, func() {
		records := []model.University{
			{ID: "c", Name: "다", EnglishName: "Charlie", SATRange: "1300-1500", Image: "https://example.com/c.png"},
			{ID: "a", Name: "나", EnglishName: "alpha", SATRange: "1200-1450", Image: "https://upload.wikimedia.org/a.svg"},
			{ID: "b", Name: "가", EnglishName: "Bravo", SATRange: "garbage", Image: "not a url \x7f"},
			{ID: "d", Name: "라", EnglishName: "Delta", SATRange: "1300-1550", Image: "https://cdn.logos-world.net/d.png"},
		}
		original := append([]model.University(nil), records...)

		Convey("When sorting by name ascending in English", func() {
			got := sorting.Sort(records, sorting.NameAsc, en)

			Convey("Then names should be collated case-insensitively", func() {
				So(ids(got), ShouldResemble, []string{"a", "b", "c", "d"})
			})

			Convey("Then the input should be untouched", func() {
				So(cmp.Diff(original, records), ShouldBeEmpty)
			})
		})

		Convey("When sorting by name descending in Korean", func() {
			got := sorting.Sort(records, sorting.NameDesc, ko)

			Convey("Then Korean names should drive the order", func() {
				So(ids(got), ShouldResemble, []string{"d", "c", "a", "b"})
			})
		})

		Convey("When sorting by SAT ascending", func() {
			got := sorting.Sort(records, sorting.SATAsc, en)

			Convey("Then unparseable ranges should fall back to 800 and ties keep input order", func() {
				So(ids(got), ShouldResemble, []string{"b", "a", "c", "d"})
			})
		})

		Convey("When sorting by SAT descending", func() {
			got := sorting.Sort(records, sorting.SATDesc, en)

			Convey("Then unparseable ranges should fall back to 1600", func() {
				So(ids(got), ShouldResemble, []string{"b", "d", "c", "a"})
			})
		})

		Convey("When using the default key", func() {
			got := sorting.Sort(records, sorting.Default, en)

			Convey("Then official logos should come first in stable order", func() {
				So(ids(got), ShouldResemble, []string{"a", "d", "c", "b"})
			})
		})
	})

	Convey("Given the bundled catalog", t, func() {
		c, err := catalog.Embedded()
		So(err, ShouldBeNil)

		Convey("When any key is applied twice", func() {
			Convey("Then the second sort should be a no-op", func() {
				for _, k := range sorting.Keys() {
					once := sorting.Sort(c.All(), k, en)
					twice := sorting.Sort(once, k, en)
					So(cmp.Diff(ids(once), ids(twice)), ShouldBeEmpty)
				}
			})
		})
	})
}

func TestHasOfficialLogo(t *testing.T) {
	Convey("Given image URLs", t, func() {
		Convey("Then only allow-listed hosts should count", func() {
			So(sorting.HasOfficialLogo("https://upload.wikimedia.org/x.svg"), ShouldBeTrue)
			So(sorting.HasOfficialLogo("https://logos-world.net/y.png"), ShouldBeTrue)
			So(sorting.HasOfficialLogo("https://evil.example/upload.wikimedia.org.png"), ShouldBeFalse)
			So(sorting.HasOfficialLogo("https://notlogos-world.net/y.png"), ShouldBeFalse)
			So(sorting.HasOfficialLogo(""), ShouldBeFalse)
		})
	})
}
