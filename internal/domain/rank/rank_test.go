package rank_test

import (
	"math"
	"testing"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/rank"
	. "github.com/smartystreets/goconvey/convey"
)

func pct(v float64) *float64 { return &v }

func entrant(id string, change *float64) model.Entrant {
	return model.Entrant{AccountID: id, PctChange: change}
}

func TestSortByPctChange(t *testing.T) {
	Convey("Given a snapshot with finite, null and non-finite percent changes", t, func() {
		nan := math.NaN()
		inf := math.Inf(1)
		entrants := []model.Entrant{
			entrant("acct-null", nil),
			entrant("acct-low", pct(-3.2)),
			entrant("acct-top", pct(18.4)),
			entrant("acct-nan", &nan),
			entrant("acct-mid", pct(7.1)),
			entrant("acct-inf", &inf),
		}

		Convey("When sorting by percent change", func() {
			rank.SortByPctChange(entrants)

			Convey("Then finite values come first in non-increasing order", func() {
				So(entrants[0].AccountID, ShouldEqual, "acct-top")
				So(entrants[1].AccountID, ShouldEqual, "acct-mid")
				So(entrants[2].AccountID, ShouldEqual, "acct-low")
			})

			Convey("And null or non-finite values sort strictly after all finite ones", func() {
				tail := []string{entrants[3].AccountID, entrants[4].AccountID, entrants[5].AccountID}
				So(tail, ShouldContain, "acct-null")
				So(tail, ShouldContain, "acct-nan")
				So(tail, ShouldContain, "acct-inf")
			})

			Convey("And the null tail is ordered deterministically by account id", func() {
				So(entrants[3].AccountID, ShouldEqual, "acct-inf")
				So(entrants[4].AccountID, ShouldEqual, "acct-nan")
				So(entrants[5].AccountID, ShouldEqual, "acct-null")
			})
		})

		Convey("When two entrants share the same percent change", func() {
			tied := []model.Entrant{
				entrant("acct-b", pct(5.0)),
				entrant("acct-a", pct(5.0)),
			}
			rank.SortByPctChange(tied)

			Convey("Then the tie breaks on account id", func() {
				So(tied[0].AccountID, ShouldEqual, "acct-a")
				So(tied[1].AccountID, ShouldEqual, "acct-b")
			})
		})

		Convey("When sorting an empty snapshot", func() {
			var empty []model.Entrant
			rank.SortByPctChange(empty)

			Convey("Then nothing happens", func() {
				So(empty, ShouldBeEmpty)
			})
		})
	})
}

func TestBuildRankMap(t *testing.T) {
	Convey("Given an ordered snapshot", t, func() {
		ordered := []model.Entrant{
			entrant("acct-1", pct(12.0)),
			entrant("acct-2", pct(8.0)),
			entrant("acct-3", nil),
		}

		Convey("When building the rank map", func() {
			m := rank.BuildRankMap(ordered)

			Convey("Then each account maps to its position in the input order", func() {
				So(m, ShouldHaveLength, 3)
				So(m["acct-1"], ShouldEqual, 0)
				So(m["acct-2"], ShouldEqual, 1)
				So(m["acct-3"], ShouldEqual, 2)
			})

			Convey("And the values form a dense permutation of 0..N-1", func() {
				seen := make(map[int]bool, len(m))
				for _, r := range m {
					So(r, ShouldBeGreaterThanOrEqualTo, 0)
					So(r, ShouldBeLessThan, len(m))
					So(seen[r], ShouldBeFalse)
					seen[r] = true
				}
			})
		})

		Convey("When the input contains empty account ids", func() {
			withEmpty := []model.Entrant{
				entrant("acct-1", pct(4.0)),
				entrant("", pct(3.0)),
				entrant("acct-2", pct(2.0)),
			}
			m := rank.BuildRankMap(withEmpty)

			Convey("Then empty ids are skipped and ranks stay dense", func() {
				So(m, ShouldHaveLength, 2)
				So(m["acct-1"], ShouldEqual, 0)
				So(m["acct-2"], ShouldEqual, 1)
			})
		})

		Convey("When the input is empty", func() {
			m := rank.BuildRankMap(nil)

			Convey("Then the map is empty but usable", func() {
				So(m, ShouldBeEmpty)
			})
		})
	})
}

func TestMovement(t *testing.T) {
	Convey("Given a previous rank map", t, func() {
		prev := model.RankMap{"acct-1": 0, "acct-2": 1, "acct-3": 2}

		Convey("When an entrant improved its rank", func() {
			mv, old := rank.Movement(prev, "acct-3", 1)

			Convey("Then the movement is up with the prior rank", func() {
				So(mv, ShouldEqual, model.MovementUp)
				So(old, ShouldEqual, 2)
			})
		})

		Convey("When an entrant dropped", func() {
			mv, old := rank.Movement(prev, "acct-1", 2)

			Convey("Then the movement is down", func() {
				So(mv, ShouldEqual, model.MovementDown)
				So(old, ShouldEqual, 0)
			})
		})

		Convey("When an entrant kept its rank", func() {
			mv, old := rank.Movement(prev, "acct-2", 1)

			Convey("Then the movement is same", func() {
				So(mv, ShouldEqual, model.MovementSame)
				So(old, ShouldEqual, 1)
			})
		})

		Convey("When an entrant was absent from the previous cycle", func() {
			mv, old := rank.Movement(prev, "acct-9", 0)

			Convey("Then the movement is new with no prior rank", func() {
				So(mv, ShouldEqual, model.MovementNew)
				So(old, ShouldEqual, -1)
			})
		})
	})
}
