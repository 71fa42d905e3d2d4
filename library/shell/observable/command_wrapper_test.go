package observable_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llCelmarll/Bibliotheque2-sub000/eventstore"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/core"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell"
	"github.com/llCelmarll/Bibliotheque2-sub000/library/shell/observable"
	"github.com/llCelmarll/Bibliotheque2-sub000/testutil/observability/testdoubles"
)

type testCommand struct{}

func (testCommand) CommandType() string { return "TestCommand" }

type stubCommandHandler struct {
	result shell.HandlerResult
	err    error
	calls  int
}

func (h *stubCommandHandler) Handle(_ context.Context, _ testCommand) (shell.HandlerResult, error) {
	h.calls++
	return h.result, h.err
}

func givenWrappedCommandHandler(
	t *testing.T,
	handler *stubCommandHandler,
) (*observable.CommandWrapper[testCommand], *testdoubles.MetricsCollectorSpy, *testdoubles.ContextualLoggerSpy) {

	t.Helper()

	metricsCollector := testdoubles.NewMetricsCollectorSpy(true)
	contextualLogger := testdoubles.NewContextualLoggerSpy(true)

	wrapper, err := observable.NewCommandWrapper[testCommand](
		handler,
		observable.WithCommandMetrics[testCommand](metricsCollector),
		observable.WithCommandContextualLogging[testCommand](contextualLogger),
	)
	require.NoError(t, err)

	return wrapper, metricsCollector, contextualLogger
}

func Test_CommandWrapper_Handle_Success(t *testing.T) {
	// arrange
	handler := &stubCommandHandler{result: shell.HandlerResult{EntityID: "book-1", RetryAttempts: 1}}
	wrapper, metricsCollector, contextualLogger := givenWrappedCommandHandler(t, handler)

	// act
	result, err := wrapper.Handle(context.Background(), testCommand{})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, "book-1", result.EntityID)
	assert.Equal(t, 1, handler.calls)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).
		WithLabel("command_type", "TestCommand").
		WithStatus("success").
		Assert())
	assert.True(t, metricsCollector.HasDurationRecordForMetric(shell.CommandHandlerDurationMetric).WithStatus("success").Assert())
	assert.True(t, contextualLogger.HasLogWithAttr("info", shell.LogMsgCommandCompleted, shell.LogAttrEntityID, "book-1"))
}

func Test_CommandWrapper_Handle_Idempotent(t *testing.T) {
	// arrange
	handler := &stubCommandHandler{result: shell.HandlerResult{Idempotent: true}}
	wrapper, metricsCollector, _ := givenWrappedCommandHandler(t, handler)

	// act
	_, err := wrapper.Handle(context.Background(), testCommand{})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 1, metricsCollector.CountCounterRecordsForMetric(shell.CommandHandlerIdempotentMetric))
}

func Test_CommandWrapper_Handle_BusinessRejectionIsNotAnError(t *testing.T) {
	// arrange
	handler := &stubCommandHandler{err: core.Conflict("LendBook", "book is currently borrowed")}
	wrapper, metricsCollector, contextualLogger := givenWrappedCommandHandler(t, handler)

	// act
	_, err := wrapper.Handle(context.Background(), testCommand{})

	// assert
	assert.ErrorIs(t, err, core.ErrConflict)
	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerRejectedMetric).
		WithLabel(shell.LogAttrErrorKind, "conflict").
		Assert())
	assert.True(t, contextualLogger.HasLog("info", shell.LogMsgCommandRejected))
	assert.Empty(t, contextualLogger.Records("error"))
}

func Test_CommandWrapper_Handle_InfrastructureError(t *testing.T) {
	testCases := []struct {
		description string
		err         error
		status      string
	}{
		{description: "store failure", err: errors.Join(eventstore.ErrQueryingEventsFailed, errors.New("boom")), status: shell.StatusError},
		{description: "canceled", err: context.Canceled, status: shell.StatusCanceled},
		{description: "timeout", err: context.DeadlineExceeded, status: shell.StatusTimeout},
		{description: "concurrency conflict", err: eventstore.ErrConcurrencyConflict, status: shell.StatusConcurrencyConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// arrange
			wrapper, metricsCollector, contextualLogger := givenWrappedCommandHandler(t, &stubCommandHandler{err: tc.err})

			// act
			_, err := wrapper.Handle(context.Background(), testCommand{})

			// assert
			assert.ErrorIs(t, err, tc.err)
			assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).WithStatus(tc.status).Assert())
			assert.True(t, contextualLogger.HasLog("error", shell.LogMsgCommandFailed))
		})
	}
}

func Test_CommandWrapper_WorksWithPlainLogger(t *testing.T) {
	// arrange
	logHandler := testdoubles.NewLogHandlerSpy(false)
	wrapper, err := observable.NewCommandWrapper[testCommand](
		&stubCommandHandler{},
		observable.WithCommandLogging[testCommand](logHandler.NewLogger()),
	)
	require.NoError(t, err)

	// act
	_, err = wrapper.Handle(context.Background(), testCommand{})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 2, logHandler.GetRecordCount())
	value, found := logHandler.AttrOf(shell.LogMsgCommandCompleted, shell.LogAttrCommandType)
	require.True(t, found)
	assert.Equal(t, "TestCommand", value.String())
}
