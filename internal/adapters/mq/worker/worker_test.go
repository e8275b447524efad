package worker_test

import (
	"context"
	"sync"
	"testing"
	"time"

	queue "github.com/okian/campus/internal/adapters/mq/queue"
	worker "github.com/okian/campus/internal/adapters/mq/worker"
	"github.com/smartystreets/goconvey/convey"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func waitDone(l *worker.Loop) bool {
	select {
	case <-l.Done():
		return true
	case <-time.After(2 * time.Second):
		return false
	}
}

func TestLoop(t *testing.T) {
	convey.Convey("Given a loop over an action queue", t, func() {
		q := queue.NewInMemoryQueue(queue.WithCapacity(16))
		l := worker.NewLoop(q, worker.WithName("test"))
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go l.Run(ctx)

		convey.Convey("When several actions are enqueued", func() {
			var mu sync.Mutex
			var order []int
			finished := make(chan struct{})
			for i := range 5 {
				ok := q.Enqueue(ctx, queue.Action{Name: "step", Run: func(context.Context) {
					mu.Lock()
					order = append(order, i)
					mu.Unlock()
					if i == 4 {
						close(finished)
					}
				}})
				convey.So(ok, convey.ShouldBeTrue)
			}

			convey.Convey("Then they should run in FIFO order", func() {
				select {
				case <-finished:
				case <-time.After(2 * time.Second):
					t.Fatal("actions did not run")
				}
				mu.Lock()
				defer mu.Unlock()
				convey.So(order, convey.ShouldResemble, []int{0, 1, 2, 3, 4})
				convey.So(l.Shutdown(context.Background()), convey.ShouldBeNil)
			})
		})

		convey.Convey("When an action panics", func() {
			ran := make(chan struct{})
			q.Enqueue(ctx, queue.Action{Name: "boom", Run: func(context.Context) { panic("boom") }})
			q.Enqueue(ctx, queue.Action{Name: "after", Run: func(context.Context) { close(ran) }})

			convey.Convey("Then the loop should keep serving", func() {
				select {
				case <-ran:
				case <-time.After(2 * time.Second):
					t.Fatal("loop stopped after panic")
				}
				convey.So(l.Shutdown(context.Background()), convey.ShouldBeNil)
			})
		})

		convey.Convey("When the queue is closed", func() {
			convey.So(q.Close(), convey.ShouldBeNil)

			convey.Convey("Then the loop should stop", func() {
				convey.So(waitDone(l), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the context is cancelled", func() {
			cancel()

			convey.Convey("Then the loop should stop and shutdown should be idempotent", func() {
				convey.So(waitDone(l), convey.ShouldBeTrue)
				convey.So(l.Shutdown(context.Background()), convey.ShouldBeNil)
				convey.So(l.Shutdown(context.Background()), convey.ShouldBeNil)
			})
		})
	})
}

func TestShutdownTimeout(t *testing.T) {
	convey.Convey("Given a loop stuck in a long action", t, func() {
		q := queue.NewInMemoryQueue()
		l := worker.NewLoop(q)
		release := make(chan struct{})
		started := make(chan struct{})
		go l.Run(context.Background())
		q.Enqueue(context.Background(), queue.Action{Name: "slow", Run: func(context.Context) {
			close(started)
			<-release
		}})
		<-started

		convey.Convey("When shutdown has a short deadline", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
			defer cancel()
			err := l.Shutdown(ctx)

			convey.Convey("Then it should time out and succeed once the action ends", func() {
				convey.So(err, convey.ShouldNotBeNil)
				close(release)
				convey.So(waitDone(l), convey.ShouldBeTrue)
			})
		})
	})
}
