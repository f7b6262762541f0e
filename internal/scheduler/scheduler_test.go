package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/okian/podium/internal/scheduler"
	"github.com/okian/podium/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	_ = logger.Init()
}

func at(hour, minute int) time.Time {
	return time.Date(2024, time.March, 15, hour, minute, 0, 0, time.UTC)
}

func TestNextRefresh(t *testing.T) {
	Convey("Given wall-clock instants", t, func() {
		Convey("When inside an even hour before the :30 mark", func() {
			So(scheduler.NextRefresh(at(8, 10)), ShouldEqual, at(8, 30))
			So(scheduler.NextRefresh(at(0, 0)), ShouldEqual, at(0, 30))
		})

		Convey("When inside an even hour past the :30 mark", func() {
			So(scheduler.NextRefresh(at(8, 45)), ShouldEqual, at(10, 30))
		})

		Convey("When exactly on a fire instant", func() {
			Convey("Then the next fire is strictly in the future", func() {
				So(scheduler.NextRefresh(at(8, 30)), ShouldEqual, at(10, 30))
			})
		})

		Convey("When inside an odd hour", func() {
			So(scheduler.NextRefresh(at(9, 5)), ShouldEqual, at(10, 30))
			So(scheduler.NextRefresh(at(9, 45)), ShouldEqual, at(10, 30))
		})

		Convey("When late in the day", func() {
			Convey("Then the fire rolls into the next day", func() {
				next := scheduler.NextRefresh(at(23, 40))
				So(next, ShouldEqual, time.Date(2024, time.March, 16, 0, 30, 0, 0, time.UTC))
			})
		})

		Convey("When the input is not UTC", func() {
			loc := time.FixedZone("UTC+2", 2*3600)
			now := time.Date(2024, time.March, 15, 10, 10, 0, 0, loc) // 08:10Z

			Convey("Then the even-hour grid is evaluated in UTC", func() {
				So(scheduler.NextRefresh(now), ShouldEqual, at(8, 30))
			})
		})
	})
}

type stubRefresher struct {
	calls chan time.Time
	clock clockwork.Clock
}

func (r *stubRefresher) RefreshNow(_ context.Context) {
	r.calls <- r.clock.Now()
}

type stubCountdown struct {
	ticks atomic.Int64
	last  atomic.Value
}

func (c *stubCountdown) TickCountdown(now time.Time) {
	c.last.Store(now)
	c.ticks.Add(1)
}

func TestSchedulerLoops(t *testing.T) {
	Convey("Given a scheduler on a fake clock at 08:10", t, func() {
		start := at(8, 10)
		fc := clockwork.NewFakeClockAt(start)
		refresher := &stubRefresher{calls: make(chan time.Time, 4), clock: fc}
		cd := &stubCountdown{}

		s := scheduler.New(refresher, cd, scheduler.WithClock(fc))
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		s.Start(ctx)
		defer s.Stop()

		// one refresh timer and one countdown ticker waiting on the clock
		fc.BlockUntil(2)

		Convey("When the clock reaches 08:30", func() {
			fc.Advance(20 * time.Minute)

			Convey("Then a refresh cycle runs at the :30 mark", func() {
				fired := <-refresher.calls
				So(fired, ShouldEqual, at(8, 30))
			})

			Convey("And the loop re-arms for 10:30", func() {
				<-refresher.calls
				fc.BlockUntil(2)
				fc.Advance(2 * time.Hour)

				fired := <-refresher.calls
				So(fired, ShouldEqual, at(10, 30))
			})
		})

		Convey("When one second passes", func() {
			fc.Advance(time.Second)

			Convey("Then the countdown ticks", func() {
				So(func() bool {
					deadline := time.Now().Add(2 * time.Second)
					for cd.ticks.Load() == 0 {
						if time.Now().After(deadline) {
							return false
						}
						time.Sleep(time.Millisecond)
					}
					return true
				}(), ShouldBeTrue)
			})
		})

		Convey("When the scheduler is stopped before the timer fires", func() {
			s.Stop()

			Convey("Then no refresh cycle ran and the pending timer is released", func() {
				So(len(refresher.calls), ShouldEqual, 0)

				// advancing past the would-be fire instant stays quiet
				fc.Advance(time.Hour)
				select {
				case <-refresher.calls:
					So("refresh fired after stop", ShouldBeEmpty)
				case <-time.After(50 * time.Millisecond):
				}
			})
		})
	})
}
