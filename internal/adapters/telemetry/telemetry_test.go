package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wcw/internal/adapters/telemetry"
	"go.trai.ch/wcw/internal/core/ports"
	"go.trai.ch/wcw/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestInterfaceSatisfaction(_ *testing.T) {
	var _ ports.Tracer = (*telemetry.OTelTracer)(nil)
	var _ ports.Span = (*telemetry.OTelSpan)(nil)
	var _ ports.Tracer = (*telemetry.NoOpTracer)(nil)
	var _ ports.Span = (*telemetry.NoOpSpan)(nil)
}

func TestOTelTracer_BridgeLogsFinishedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var logged []string
	mockLogger.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		logged = append(logged, msg)
	}).Times(1)

	tracer := telemetry.NewOTelTracer(telemetry.NewLogBridge(mockLogger))

	_, span := tracer.Start(context.Background(), "clone", ports.WithAttribute("folder", "paper-button"))
	n, err := span.Write([]byte("Cloning into 'paper-button'...\n"))
	require.NoError(t, err)
	assert.Equal(t, 31, n)
	span.RecordError(errors.New("exit status 128"))
	span.End()

	require.NoError(t, tracer.Shutdown(context.Background()))
	require.Len(t, logged, 1)
	assert.Contains(t, logged[0], "clone finished in")
	assert.Contains(t, logged[0], "folder=paper-button")
	assert.Contains(t, logged[0], "error=exit status 128")
}

func TestOTelTracer_AttributeTypes(t *testing.T) {
	tracer := telemetry.NewOTelTracer()
	defer func() { _ = tracer.Shutdown(context.Background()) }()

	_, span := tracer.Start(context.Background(), "update")
	span.SetAttribute("string", "v")
	span.SetAttribute("int", 1)
	span.SetAttribute("int64", int64(2))
	span.SetAttribute("float", 1.5)
	span.SetAttribute("bool", true)
	span.SetAttribute("slice", []string{"a", "b"})
	span.SetAttribute("other", struct{ X int }{1})
	span.RecordError(nil)
	span.End()
}

func TestNoOpTracer_Start(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()
	assert.NotNil(t, tracer)

	ctx := context.Background()
	gotCtx, span := tracer.Start(ctx, "test-span")
	assert.Equal(t, ctx, gotCtx)
	assert.NotNil(t, span)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	n, err := span.Write([]byte("test log"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	span.End()
	require.NoError(t, tracer.Shutdown(ctx))
}
