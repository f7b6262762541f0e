package statestore_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/podium/internal/adapters/statestore"
	"github.com/okian/podium/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFileStore(t *testing.T) {
	Convey("Given a file store in a temp directory", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "ranks.json")
		store := statestore.NewFileStore(statestore.WithPath(path))
		ctx := context.Background()

		Convey("When loading before anything was saved", func() {
			m, err := store.Load(ctx)

			Convey("Then an empty map comes back without error", func() {
				So(err, ShouldBeNil)
				So(m, ShouldBeEmpty)
			})
		})

		Convey("When saving and reloading a rank map", func() {
			saved := model.RankMap{"acct-1": 0, "acct-2": 1, "acct-3": 2}
			So(store.Save(ctx, saved), ShouldBeNil)

			m, err := store.Load(ctx)

			Convey("Then the persisted map round-trips", func() {
				So(err, ShouldBeNil)
				So(m, ShouldResemble, saved)
			})
		})

		Convey("When a save replaces an earlier map", func() {
			So(store.Save(ctx, model.RankMap{"acct-1": 0}), ShouldBeNil)
			So(store.Save(ctx, model.RankMap{"acct-9": 0}), ShouldBeNil)

			m, err := store.Load(ctx)

			Convey("Then only the latest generation survives", func() {
				So(err, ShouldBeNil)
				So(m, ShouldResemble, model.RankMap{"acct-9": 0})
			})
		})

		Convey("When the state file is corrupt", func() {
			So(os.WriteFile(path, []byte("{not json"), 0o600), ShouldBeNil)

			m, err := store.Load(ctx)

			Convey("Then load fails soft to an empty map", func() {
				So(errors.Is(err, statestore.ErrLoad), ShouldBeTrue)
				So(m, ShouldBeEmpty)
				So(m, ShouldNotBeNil)
			})
		})

		Convey("When saving a nil map", func() {
			So(store.Save(ctx, nil), ShouldBeNil)

			m, err := store.Load(ctx)

			Convey("Then it persists as an empty object", func() {
				So(err, ShouldBeNil)
				So(m, ShouldBeEmpty)
			})
		})
	})
}

func TestMemoryStore(t *testing.T) {
	Convey("Given a memory store", t, func() {
		store := statestore.NewMemoryStore()
		ctx := context.Background()

		Convey("When saving a map and mutating the original", func() {
			saved := model.RankMap{"acct-1": 0}
			So(store.Save(ctx, saved), ShouldBeNil)
			saved["acct-1"] = 99

			m, err := store.Load(ctx)

			Convey("Then the store kept its own copy", func() {
				So(err, ShouldBeNil)
				So(m["acct-1"], ShouldEqual, 0)
			})
		})
	})
}
