package jobs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"deliverydesk/internal/core/application/usecases/queries"
	"deliverydesk/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDeliveriesReader struct{ mock.Mock }

func (m *MockDeliveriesReader) Handle(
	ctx context.Context,
	query queries.GetDeliveriesQuery,
) (queries.GetDeliveriesQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetDeliveriesQueryResponse), args.Error(1)
}

func jsonLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, nil))
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &rec))
	return rec
}

func TestDeliveryTotalJob_Run_LogsTotal(t *testing.T) {
	ctx := t.Context()
	editing := 2
	reader := new(MockDeliveriesReader)
	reader.On("Handle", ctx, mock.AnythingOfType("queries.GetDeliveriesQuery")).
		Return(queries.GetDeliveriesQueryResponse{Total: 3, EditingNumber: &editing}, nil).Once()

	var buf bytes.Buffer
	jobs.NewDeliveryTotalJob(reader, "", jsonLogger(&buf)).Run(ctx)

	rec := lastRecord(t, &buf)
	assert.Equal(t, "Total deliveries", rec["msg"])
	assert.InDelta(t, 3, rec["total"], 0)
	assert.InDelta(t, 2, rec["editing"], 0)
	assert.Equal(t, "delivery_total_job", rec["component"])
	reader.AssertExpectations(t)
}

func TestDeliveryTotalJob_Run_LogsFailure(t *testing.T) {
	ctx := t.Context()
	reader := new(MockDeliveriesReader)
	reader.On("Handle", ctx, mock.Anything).
		Return(queries.GetDeliveriesQueryResponse{}, errors.New("session unavailable")).Once()

	var buf bytes.Buffer
	jobs.NewDeliveryTotalJob(reader, "", jsonLogger(&buf)).Run(ctx)

	rec := lastRecord(t, &buf)
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "session unavailable", rec["error"])
}

func TestDeliveryTotalJob_StartStop(t *testing.T) {
	var buf bytes.Buffer
	job := jobs.NewDeliveryTotalJob(new(MockDeliveriesReader), "@every 1h", jsonLogger(&buf))

	require.NoError(t, job.Start())
	job.Stop()
	assert.Contains(t, buf.String(), "Delivery total job stopped")
}

func TestJobManager_InvalidSchedule(t *testing.T) {
	var buf bytes.Buffer
	jm := jobs.NewJobManager(new(MockDeliveriesReader), "not a schedule", jsonLogger(&buf))

	err := jm.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delivery total job")
}
