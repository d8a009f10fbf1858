package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sambatin/internal/services"
)

func newFeedbackRouter(t *testing.T, webhookURL string) *gin.Engine {
	t.Helper()
	t.Setenv("FEEDBACK_WEBHOOK_URL", webhookURL)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/feedback", NewFeedbackHandler(services.NewFeedbackService()).Submit)
	return r
}

func TestFeedback_RelaysBugReport(t *testing.T) {
	var got map[string]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	r := newFeedbackRouter(t, upstream.URL)
	w := postJSON(t, r, "/api/feedback", map[string]string{
		"type":    "bug",
		"message": "tombol kirim mati",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bug Report", got["jenis"])
	assert.Equal(t, "[SAMBAT.IN] Bug Report", got["_subject"])
	assert.Equal(t, "tombol kirim mati", got["pesan"])
	assert.Equal(t, "anonymous@sambat.in", got["email"])
}

func TestFeedback_SuggestionKeepsEmail(t *testing.T) {
	var got map[string]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	r := newFeedbackRouter(t, upstream.URL)
	w := postJSON(t, r, "/api/feedback", map[string]string{
		"type":    "suggestion",
		"message": "tambah dark mode",
		"email":   "budi@example.com",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Saran/Masukan", got["jenis"])
	assert.Equal(t, "budi@example.com", got["email"])
}

func TestFeedback_EmptyMessageRejected(t *testing.T) {
	r := newFeedbackRouter(t, "http://127.0.0.1:0")

	w := postJSON(t, r, "/api/feedback", map[string]string{"type": "bug", "message": "  "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeedback_UpstreamFailureIs502(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer upstream.Close()

	r := newFeedbackRouter(t, upstream.URL)
	w := postJSON(t, r, "/api/feedback", map[string]string{"type": "bug", "message": "halo"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestFeedback_NotConfiguredIs502(t *testing.T) {
	r := newFeedbackRouter(t, "")

	w := postJSON(t, r, "/api/feedback", map[string]string{"type": "bug", "message": "halo"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
