package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"leavebot/internal/leave"
	"leavebot/internal/worker"
	"leavebot/pkg/domain"
	"leavebot/pkg/logger"
	mockmessenger "leavebot/pkg/messenger/mock"
	"leavebot/pkg/serrors"
	"leavebot/pkg/storage"
	mockstorage "leavebot/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	_ = logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

var (
	requestID = uuid.MustParse("7a0d6f0e-5b7e-4c1a-9b8a-1d2e3f405060")
	retryKey  = uuid.MustParse("0b6c9f1e-2a3d-4e5f-8a9b-0c1d2e3f4a5b")
)

func makeJob(id int64, attempt int) *river.Job[leave.PushJobArgs] {
	return &river.Job[leave.PushJobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: attempt, MaxAttempts: 3},
		Args: leave.PushJobArgs{
			LeaveRequestID: requestID,
			To:             "U1",
			Text:           "คำขอลาได้รับแล้ว",
			RetryKey:       retryKey,
		},
	}
}

func setup(t *testing.T) (*mockmessenger.MockClient, *mockstorage.MockAllStorage, *worker.PushWorker) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mockmessenger.NewMockClient(ctrl)
	store := mockstorage.NewMockAllStorage(ctrl)

	return client, store, worker.NewPushWorker(client, store, nil)
}

func TestPushWorker_Work_Success(t *testing.T) {
	client, store, w := setup(t)

	client.EXPECT().PushMessage(gomock.Any(), "U1", retryKey.String(), gomock.Any()).Return(nil)
	store.EXPECT().UpdateLeaveRequestByID(gomock.Any(), domain.LeaveRequestID(requestID), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.LeaveRequestID, u storage.LeaveRequestUpdates) (*domain.LeaveRequest, error) {
			require.Equal(t, domain.NotificationStatusSent, u.Status)
			require.NotNil(t, u.LastError)
			require.Empty(t, *u.LastError)

			return &domain.LeaveRequest{}, nil
		})

	require.NoError(t, w.Work(context.Background(), makeJob(1, 1)))
}

func TestPushWorker_Work_StorageFailureDoesNotFailJob(t *testing.T) {
	client, store, w := setup(t)

	client.EXPECT().PushMessage(gomock.Any(), "U1", retryKey.String(), gomock.Any()).Return(nil)
	store.EXPECT().UpdateLeaveRequestByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	require.NoError(t, w.Work(context.Background(), makeJob(2, 1)))
}

func TestPushWorker_Work_BadRequestCancels(t *testing.T) {
	client, store, w := setup(t)

	client.EXPECT().PushMessage(gomock.Any(), "U1", retryKey.String(), gomock.Any()).
		Return(serrors.With(serrors.ErrBadRequest, "invalid recipient"))
	store.EXPECT().UpdateLeaveRequestByID(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.LeaveRequestID, u storage.LeaveRequestUpdates) (*domain.LeaveRequest, error) {
			require.Equal(t, domain.NotificationStatusFailed, u.Status)
			require.Zero(t, u.MaxAttempts)
			require.Contains(t, *u.LastError, "invalid recipient")

			return nil, nil
		})

	err := w.Work(context.Background(), makeJob(3, 1))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestPushWorker_Work_RateLimitedSnoozes(t *testing.T) {
	client, store, w := setup(t)

	client.EXPECT().PushMessage(gomock.Any(), "U1", retryKey.String(), gomock.Any()).
		Return(serrors.With(serrors.ErrRateLimited, "too many requests"))
	store.EXPECT().UpdateLeaveRequestByID(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.LeaveRequestID, u storage.LeaveRequestUpdates) (*domain.LeaveRequest, error) {
			require.Empty(t, u.Status)

			return nil, nil
		})

	err := w.Work(context.Background(), makeJob(4, 1))
	require.Error(t, err)
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, worker.RateLimitSnooze, snoozeErr.Duration)
}

func TestPushWorker_Work_GenericErrorRetried(t *testing.T) {
	client, store, w := setup(t)

	pushErr := serrors.With(serrors.ErrUnavailable, "bad gateway")
	client.EXPECT().PushMessage(gomock.Any(), "U1", retryKey.String(), gomock.Any()).Return(pushErr)
	store.EXPECT().UpdateLeaveRequestByID(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.LeaveRequestID, u storage.LeaveRequestUpdates) (*domain.LeaveRequest, error) {
			require.Equal(t, domain.NotificationStatusFailed, u.Status)
			require.Equal(t, 3, u.MaxAttempts)

			return nil, nil
		})

	err := w.Work(context.Background(), makeJob(5, 2))
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr, "did not expect JobCancelError")
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr, "did not expect JobSnoozeError")
}

func TestRetryDelay(t *testing.T) {
	require.Equal(t, 2*time.Second, worker.RetryDelay(0))
	require.Equal(t, 2*time.Second, worker.RetryDelay(1))
	require.Equal(t, 4*time.Second, worker.RetryDelay(2))
	require.Equal(t, 8*time.Second, worker.RetryDelay(3))
	require.Equal(t, 5*time.Minute, worker.RetryDelay(20))
}

func TestPushWorker_NextRetry(t *testing.T) {
	_, _, w := setup(t)

	before := time.Now()
	next := w.NextRetry(makeJob(6, 2))
	require.WithinDuration(t, before.Add(4*time.Second), next, time.Second)
	require.Equal(t, 30*time.Second, w.Timeout(makeJob(6, 1)))
}
