package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger() (*logrus.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := SetupLogging("debug")
	logger.Out = buf
	return logger, buf
}

func TestGetLogData_FromContext(t *testing.T) {
	logger, _ := bufferLogger()
	logData := NewLogData(logger)

	ctx := WithLogData(context.Background(), logData)
	assert.Same(t, logData, GetLogData(ctx))
	assert.NotNil(t, GetLogData(context.Background()))
}

func TestLogData_Fields(t *testing.T) {
	logger, buf := bufferLogger()
	logData := NewLogData(logger)
	logData.AddData("cards", 3)
	logData.AddTiming("loadMs")()

	logData.Log().Info("done")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "info", line["loglevel"])
	assert.Equal(t, float64(3), line["cards"])
	assert.Contains(t, line, "loadMs")
}

func TestLoggingWrapper_FreshLogDataPerRequest(t *testing.T) {
	logger, _ := bufferLogger()
	var seen []*LogData

	h := LoggingWrapper("Test", logger, func(w http.ResponseWriter, r *http.Request, l *LogData) error {
		seen = append(seen, l)
		assert.Same(t, l, GetLogData(r.Context()))
		return nil
	})

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, seen, 2)
	assert.NotSame(t, seen[0], seen[1])
}

func TestLoggingWrapper_LogsError(t *testing.T) {
	logger, buf := bufferLogger()
	h := LoggingWrapper("Test", logger, func(http.ResponseWriter, *http.Request, *LogData) error {
		return errors.New("boom")
	})

	h(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, buf.String(), "Handler.Test.Error")
	assert.Contains(t, buf.String(), "boom")
}
