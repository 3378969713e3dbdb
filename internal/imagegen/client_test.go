package imagegen

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresAPIKey(t *testing.T) {
	c, err := NewClient(Config{})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestGenerateImage(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	var got map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/images/generations", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"created": 1,
			"data":    []map[string]any{{"b64_json": base64.StdEncoding.EncodeToString(png)}},
		})
	}))
	defer server.Close()

	c, err := NewClient(Config{APIKey: "test-key", BaseURL: server.URL + "/"})
	require.NoError(t, err)

	data, err := c.GenerateImage(context.Background(), StyleAnime, "tall woman", []string{"curly", "red hair"})
	require.NoError(t, err)
	assert.Equal(t, png, data)

	assert.Equal(t, "dall-e-3", got["model"])
	assert.Equal(t, "b64_json", got["response_format"])
	assert.Contains(t, got["prompt"], "anime")
	assert.Contains(t, got["prompt"], "Key features: curly, red hair.")
}

func TestGenerateImage_EmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"created":1,"data":[]}`))
	}))
	defer server.Close()

	c, err := NewClient(Config{APIKey: "k", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = c.GenerateImage(context.Background(), DefaultStyle, "someone", nil)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestGenerateImage_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"content policy","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	c, err := NewClient(Config{APIKey: "k", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = c.GenerateImage(context.Background(), DefaultStyle, "someone", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create image")
}

func TestEditDescription(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  Luis wears blue glasses.\n"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	c, err := NewClient(Config{APIKey: "k", BaseURL: server.URL})
	require.NoError(t, err)

	out, err := c.EditDescription(context.Background(), "uh blue glasses guy", []string{"glasses"}, "Luis")
	require.NoError(t, err)
	assert.Equal(t, "Luis wears blue glasses.", out)
	assert.Equal(t, "gpt-4o-mini", got["model"])
	assert.InDelta(t, 0.3, got["temperature"], 1e-6)
}

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle("")
	require.NoError(t, err)
	assert.Equal(t, StylePolaroid, s)

	s, err = ParseStyle("POP_ART")
	require.NoError(t, err)
	assert.Equal(t, StylePopArt, s)

	_, err = ParseStyle("oil")
	assert.Error(t, err)
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(StyleCourtroom, " older man ", nil)
	assert.Contains(t, p, "Courtroom sketch")
	assert.Contains(t, p, "description: older man.")
	assert.NotContains(t, p, "Key features")
}
