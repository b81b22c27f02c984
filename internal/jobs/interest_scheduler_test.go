package jobs_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/paluwagan_app/internal/core/domain"
	"github.com/SscSPs/paluwagan_app/internal/jobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInterestService struct {
	mock.Mock
	calls atomic.Int32
}

func (m *MockInterestService) ApplyMonthlyInterest(ctx context.Context) (domain.BatchResult, error) {
	m.calls.Add(1)
	args := m.Called(ctx)
	return args.Get(0).(domain.BatchResult), args.Error(1)
}

func TestInterestScheduler_RunsUntilStopped(t *testing.T) {
	svc := new(MockInterestService)
	svc.On("ApplyMonthlyInterest", mock.Anything).Return(domain.BatchResult{Failures: []domain.RecordFailure{}}, nil)

	s := jobs.NewInterestScheduler(svc, 10*time.Millisecond, nil)
	s.Start(context.Background())
	s.Start(context.Background())

	assert.Eventually(t, func() bool { return svc.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	stopped := svc.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, stopped, svc.calls.Load())
}

func TestInterestScheduler_SweepErrorKeepsRunning(t *testing.T) {
	svc := new(MockInterestService)
	svc.On("ApplyMonthlyInterest", mock.Anything).Return(domain.BatchResult{}, errors.New("store down"))

	s := jobs.NewInterestScheduler(svc, 10*time.Millisecond, nil)
	s.Start(context.Background())

	assert.Eventually(t, func() bool { return svc.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	require.NoError(t, s.Stop(context.Background()))
}

func TestInterestScheduler_DisabledInterval(t *testing.T) {
	svc := new(MockInterestService)

	s := jobs.NewInterestScheduler(svc, 0, nil)
	s.Start(context.Background())
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, int32(0), svc.calls.Load())
	assert.NoError(t, s.Stop(context.Background()))
	svc.AssertNotCalled(t, "ApplyMonthlyInterest", mock.Anything)
}
