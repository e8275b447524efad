package compare_test

import (
	"context"
	"errors"
	"testing"

	"github.com/okian/campus/internal/adapters/repository"
	"github.com/okian/campus/internal/domain/catalog"
	"github.com/okian/campus/internal/domain/compare"
	"github.com/okian/campus/internal/domain/i18n"
	. "github.com/smartystreets/goconvey/convey"
)

// flakyStore wraps a memory store and fails writes on demand.
type flakyStore struct {
	*repository.MemoryStore
	failSet bool
	failGet bool
	sets    int
}

func (s *flakyStore) Get(ctx context.Context, key string) (string, error) {
	if s.failGet {
		return "", errors.New("disk on fire")
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *flakyStore) Set(ctx context.Context, key, value string) error {
	s.sets++
	if s.failSet {
		return errors.New("quota exceeded")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func newStore() *flakyStore {
	return &flakyStore{MemoryStore: repository.NewMemoryStore()}
}

func TestAdd(t *testing.T) {
	ctx := context.Background()
	cat, err := catalog.Embedded()
	if err != nil {
		t.Fatal(err)
	}

	Convey("Given an empty comparison list", t, func() {
		store := newStore()
		m := compare.NewManager(store, cat)
		m.Load(ctx)

		Convey("When adding a known university", func() {
			u, err := m.Add(ctx, "mit")

			Convey("Then it should be selected and persisted", func() {
				So(err, ShouldBeNil)
				So(u.ID, ShouldEqual, "mit")
				So(m.IDs(), ShouldResemble, []string{"mit"})
				raw, err := store.Get(ctx, compare.DefaultKey)
				So(err, ShouldBeNil)
				So(raw, ShouldEqual, `["mit"]`)
			})
		})

		Convey("When adding the same university twice", func() {
			_, _ = m.Add(ctx, "mit")
			_, err := m.Add(ctx, "mit")

			Convey("Then it should fail with already added and leave the list unchanged", func() {
				So(errors.Is(err, compare.ErrAlreadyAdded), ShouldBeTrue)
				var ce *compare.Error
				So(errors.As(err, &ce), ShouldBeTrue)
				So(ce.ID, ShouldEqual, "mit")
				So(m.IDs(), ShouldResemble, []string{"mit"})
			})
		})

		Convey("When adding an unknown id", func() {
			_, err := m.Add(ctx, "hogwarts")

			Convey("Then it should be rejected", func() {
				So(errors.Is(err, compare.ErrUnknownUniversity), ShouldBeTrue)
				So(m.Len(), ShouldEqual, 0)
			})
		})

		Convey("When the list is full", func() {
			for _, id := range []string{"mit", "harvard", "rice", "ucla"} {
				_, err := m.Add(ctx, id)
				So(err, ShouldBeNil)
			}

			Convey("Then a fifth add should fail with limit reached", func() {
				_, err := m.Add(ctx, "nyu")
				So(errors.Is(err, compare.ErrLimitReached), ShouldBeTrue)
				So(m.Len(), ShouldEqual, compare.Limit)
				So(m.CanAdd(), ShouldBeFalse)
				So(m.OpenSlots(), ShouldEqual, 0)
			})

			Convey("Then a duplicate should still report already added", func() {
				_, err := m.Add(ctx, "rice")
				So(errors.Is(err, compare.ErrAlreadyAdded), ShouldBeTrue)
			})
		})

		Convey("When the store rejects writes", func() {
			store.failSet = true
			_, err := m.Add(ctx, "mit")

			Convey("Then the add should still succeed in memory", func() {
				So(err, ShouldBeNil)
				So(m.Contains("mit"), ShouldBeTrue)
				So(store.sets, ShouldEqual, 1)
			})
		})
	})
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	cat, _ := catalog.Embedded()

	Convey("Given a list with two universities", t, func() {
		store := newStore()
		m := compare.NewManager(store, cat)
		_, _ = m.Add(ctx, "mit")
		_, _ = m.Add(ctx, "rice")

		Convey("When removing one", func() {
			removed := m.Remove(ctx, "mit")

			Convey("Then only the other should remain in storage", func() {
				So(removed, ShouldBeTrue)
				raw, _ := store.Get(ctx, compare.DefaultKey)
				So(raw, ShouldEqual, `["rice"]`)
				So(m.CanCompare(), ShouldBeFalse)
			})
		})

		Convey("When removing an id that is not selected", func() {
			removed := m.Remove(ctx, "nyu")

			Convey("Then nothing should change but the list is still persisted", func() {
				So(removed, ShouldBeFalse)
				So(m.IDs(), ShouldResemble, []string{"mit", "rice"})
				So(store.sets, ShouldEqual, 3)
			})
		})
	})
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	cat, _ := catalog.Embedded()

	Convey("Given stored comparison lists", t, func() {
		store := newStore()

		Convey("When a saved list is loaded again", func() {
			first := compare.NewManager(store, cat)
			for _, id := range []string{"rice", "mit", "ucla"} {
				_, _ = first.Add(ctx, id)
			}
			second := compare.NewManager(store, cat)
			got := second.Load(ctx)

			Convey("Then the selection should round trip in order", func() {
				So(len(got), ShouldEqual, 3)
				So(second.IDs(), ShouldResemble, []string{"rice", "mit", "ucla"})
			})
		})

		Convey("When stored ids no longer resolve", func() {
			So(store.Set(ctx, compare.DefaultKey, `["mit","closed-down","rice"]`), ShouldBeNil)
			m := compare.NewManager(store, cat)
			m.Load(ctx)

			Convey("Then they should be dropped silently", func() {
				So(m.IDs(), ShouldResemble, []string{"mit", "rice"})
			})
		})

		Convey("When the stored value is corrupt", func() {
			So(store.Set(ctx, compare.DefaultKey, `{not json`), ShouldBeNil)
			m := compare.NewManager(store, cat)

			Convey("Then load should yield an empty list", func() {
				So(m.Load(ctx), ShouldBeEmpty)
			})
		})

		Convey("When the store cannot be read", func() {
			store.failGet = true
			m := compare.NewManager(store, cat)

			Convey("Then load should yield an empty list", func() {
				So(m.Load(ctx), ShouldBeEmpty)
			})
		})

		Convey("When the stored list has duplicates and too many ids", func() {
			So(store.Set(ctx, compare.DefaultKey, `["mit","mit","rice","ucla","nyu","bu"]`), ShouldBeNil)
			m := compare.NewManager(store, cat, compare.WithKey(compare.DefaultKey))
			m.Load(ctx)

			Convey("Then the invariants should be restored", func() {
				So(m.IDs(), ShouldResemble, []string{"mit", "rice", "ucla", "nyu"})
			})
		})

		Convey("When a custom key is used", func() {
			m := compare.NewManager(store, cat, compare.WithKey("other"))
			_, _ = m.Add(ctx, "mit")

			Convey("Then the default key should stay empty", func() {
				_, err := store.Get(ctx, compare.DefaultKey)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})
	})
}

func TestCandidates(t *testing.T) {
	ctx := context.Background()
	cat, _ := catalog.Embedded()

	Convey("Given a list holding Harvard", t, func() {
		m := compare.NewManager(newStore(), cat)
		_, _ = m.Add(ctx, "harvard")

		Convey("When searching for Cambridge", func() {
			got := m.Candidates("cambridge")

			Convey("Then only unselected matches should be offered", func() {
				So(len(got), ShouldEqual, 1)
				So(got[0].ID, ShouldEqual, "mit")
			})
		})

		Convey("When the term is empty", func() {
			Convey("Then the whole catalog minus the selection should be offered", func() {
				So(len(m.Candidates("")), ShouldEqual, cat.Len()-1)
			})
		})
	})
}

func TestTable(t *testing.T) {
	ctx := context.Background()
	cat, _ := catalog.Embedded()
	en := i18n.For(i18n.English)

	Convey("Given a comparison list", t, func() {
		m := compare.NewManager(newStore(), cat)
		_, _ = m.Add(ctx, "mit")

		Convey("When fewer than two are selected", func() {
			_, err := m.Table(en)

			Convey("Then the table should be refused", func() {
				So(errors.Is(err, compare.ErrNotEnoughSelected), ShouldBeTrue)
			})
		})

		Convey("When MIT and Reed are compared", func() {
			_, _ = m.Add(ctx, "reed")
			table, err := m.Table(en)
			So(err, ShouldBeNil)

			rows := map[string][]string{}
			for _, sec := range table.Sections {
				for _, r := range sec.Rows {
					rows[r.Key] = r.Values
				}
			}

			Convey("Then columns and slots should follow the selection", func() {
				So(table.Columns, ShouldResemble, []compare.Column{
					{ID: "mit", Name: "Massachusetts Institute of Technology"},
					{ID: "reed", Name: "Reed College"},
				})
				So(table.OpenSlots, ShouldEqual, 2)
				So(len(table.Sections), ShouldEqual, 3)
				So(table.Sections[0].Title, ShouldEqual, "Basic Information")
			})

			Convey("Then every field should be formatted", func() {
				So(rows["tuition"], ShouldResemble, []string{"$60,156", "$66,540"})
				So(rows["acceptanceRate"], ShouldResemble, []string{"4.5%", "39.3%"})
				So(rows["estimatedGPA"], ShouldResemble, []string{"4.0", "N/A"})
				So(rows["actRange"], ShouldResemble, []string{"34-36", "N/A"})
				So(rows["size"], ShouldResemble, []string{"Medium (5,000-15,000)", "Small (<5,000)"})
				So(rows["graduationRate"], ShouldResemble, []string{"95%", "79%"})
				So(rows["degreeTypes"], ShouldResemble, []string{"Bachelor's, Master's, Doctoral", "Bachelor's"})
			})
		})
	})
}
