package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"inkwell/backend/internal/scheduler"
	"inkwell/backend/internal/service"
	svcmock "inkwell/backend/internal/service/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// The opencensus view worker starts in an init of the Gemini SDK's
	// dependencies and lives for the whole process.
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

func TestSchedulerRecoversThenProcesses(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := svcmock.NewMockTranslationService(ctrl)

	processed := make(chan int, 10)
	gomock.InOrder(
		svc.EXPECT().RecoverStale(gomock.Any()).Return(nil),
		svc.EXPECT().ProcessPending(gomock.Any(), 5).
			DoAndReturn(func(_ context.Context, batch int) (int, error) {
				select {
				case processed <- batch:
				default:
				}
				return 2, nil
			}).MinTimes(2),
	)

	s := scheduler.New(svc, 10*time.Millisecond, 5)
	s.Start()

	for i := 0; i < 2; i++ {
		select {
		case batch := <-processed:
			require.Equal(t, 5, batch)
		case <-time.After(2 * time.Second):
			t.Fatal("scheduler did not process pending workflows")
		}
	}
	s.Stop()
	s.Stop()
}

func TestSchedulerStopCancelsRunningPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := svcmock.NewMockTranslationService(ctrl)

	started := make(chan struct{})
	svc.EXPECT().RecoverStale(gomock.Any()).Return(errors.New("database locked"))
	svc.EXPECT().ProcessPending(gomock.Any(), scheduler.DefaultBatch).
		DoAndReturn(func(ctx context.Context, _ int) (int, error) {
			close(started)
			<-ctx.Done()
			return 1, ctx.Err()
		})

	s := scheduler.New(svc, time.Hour, 0)
	s.Start()

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("pass did not start")
	}

	done := make(chan struct{})
	go func() {
		s.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stop did not cancel the running pass")
	}
}

func TestSchedulerSkipsWhenAlreadyProcessing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := svcmock.NewMockTranslationService(ctrl)

	called := make(chan struct{}, 1)
	svc.EXPECT().RecoverStale(gomock.Any()).Return(nil)
	svc.EXPECT().ProcessPending(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, int) (int, error) {
			select {
			case called <- struct{}{}:
			default:
			}
			return 0, service.ErrAlreadyProcessing
		}).AnyTimes()

	s := scheduler.New(svc, time.Hour, 1)
	s.Start()
	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not run")
	}
	s.Stop()
}
