package api

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func requestLogs(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		if entry["msg"] == "request" {
			out = append(out, entry)
		}
	}
	return out
}

func TestLoggingMiddleware_PersonRoutes(t *testing.T) {
	h := newHarness(t)
	p := h.createPerson("Luis", "")
	missing := uuid.NewString()

	buf := captureLogs(t)
	h.do(http.MethodGet, "/v1/persons/"+p.ID.String(), nil)
	h.do(http.MethodGet, "/v1/persons/"+missing, nil)
	h.do(http.MethodGet, "/v1/categories", nil)

	logs := requestLogs(t, buf)
	require.Len(t, logs, 3)

	assert.Equal(t, "INFO", logs[0]["level"])
	assert.Equal(t, "/v1/persons/:id", logs[0]["route"])
	assert.Equal(t, p.ID.String(), logs[0]["person_id"])
	assert.EqualValues(t, http.StatusOK, logs[0]["status"])

	assert.Equal(t, "WARN", logs[1]["level"])
	assert.Equal(t, missing, logs[1]["person_id"])

	assert.Equal(t, "/v1/categories", logs[2]["route"])
	assert.NotContains(t, logs[2], "person_id")
}

func TestLoggingMiddleware_Unmatched(t *testing.T) {
	h := newHarness(t)
	buf := captureLogs(t)

	h.do(http.MethodGet, "/nope", nil)

	logs := requestLogs(t, buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "unmatched", logs[0]["route"])
	assert.EqualValues(t, http.StatusNotFound, logs[0]["status"])
}
