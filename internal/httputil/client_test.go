// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestyClient_SendsHeaders(t *testing.T) {
	var gotAccept, gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c := NewRestyClient(5 * time.Second)
	resp, err := c.Get(context.Background(), ts.URL, map[string]string{
		"Accept":     "application/vnd.orcid+json",
		"User-Agent": "test-agent/1.0",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body()))
	assert.Equal(t, "application/json", resp.Header("Content-Type"))
	assert.Equal(t, "application/vnd.orcid+json", gotAccept)
	assert.Equal(t, "test-agent/1.0", gotUA)
}

func TestRestyClient_DoesNotRetry(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := NewRestyClient(5 * time.Second)
	resp, err := c.Get(context.Background(), ts.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode())
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRestyClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	c := NewRestyClient(50 * time.Millisecond)
	_, err := c.Get(context.Background(), ts.URL, nil)
	assert.Error(t, err)
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		name    string
		code    int
		wantErr bool
	}{
		{"ok", http.StatusOK, false},
		{"no content", http.StatusNoContent, false},
		{"not found", http.StatusNotFound, true},
		{"server error", http.StatusInternalServerError, true},
		{"redirect not followed", http.StatusMultipleChoices, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckStatus("http://example.test/works", fakeResponse{code: tt.code})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var se *StatusError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tt.code, se.StatusCode)
			assert.Contains(t, err.Error(), "http://example.test/works")
		})
	}
}

type fakeResponse struct {
	code int
}

func (f fakeResponse) Body() []byte         { return nil }
func (f fakeResponse) StatusCode() int      { return f.code }
func (f fakeResponse) Header(string) string { return "" }
