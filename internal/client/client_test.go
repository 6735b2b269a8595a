package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsInvalidBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "not a url"})
	assert.Error(t, err)

	_, err = New(Config{BaseURL: "/just/a/path"})
	assert.Error(t, err)
}

func TestAPIError_PrefersMessageField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"the detailed reason","error":"the generic reason"}`))
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL})
	require.NoError(t, err)

	apiErr := requestError(t, c)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "the detailed reason", apiErr.Message)
}

func TestAPIError_FallsBackToErrorField(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"error":"you have already responded to this form"}`))
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL})
	require.NoError(t, err)

	apiErr := requestError(t, c)
	assert.Equal(t, "you have already responded to this form", apiErr.Message)
}

func TestAPIError_HardcodedFallbackForOpaqueBodies(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>gateway exploded</html>`))
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL})
	require.NoError(t, err)

	apiErr := requestError(t, c)
	assert.Equal(t, FallbackErrorMessage, apiErr.Message)
}

func TestRequestsCarryRequestIDAndBearer(t *testing.T) {
	var gotRequestID, gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID = r.Header.Get("X-Request-ID")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL, Token: "tok123"})
	require.NoError(t, err)

	_, err = c.ListForms(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, gotRequestID)
	assert.Equal(t, "Bearer tok123", gotAuth)
}

func TestTimeoutIsEnforced(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	c, err := New(Config{BaseURL: ts.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.ListForms(context.Background())
	assert.Error(t, err)
}

func requestError(t *testing.T, c *Client) *APIError {
	t.Helper()
	_, err := c.ListForms(context.Background())
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	return apiErr
}
