package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeCounter struct {
	counts  map[string]int64
	expires map[string]time.Duration
	incrErr error
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{counts: map[string]int64{}, expires: map[string]time.Duration{}}
}

func (f *fakeCounter) Incr(_ context.Context, key string) (int64, error) {
	if f.incrErr != nil {
		return 0, f.incrErr
	}
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeCounter) Expire(_ context.Context, key string, expiration time.Duration) error {
	f.expires[key] = expiration
	return nil
}

func limitedRouter(counter Counter, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/assessment", RateLimit(counter, limit, time.Minute), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func submit(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assessment", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitBlocksOverLimit(t *testing.T) {
	counter := newFakeCounter()
	r := limitedRouter(counter, 3)

	for i := 0; i < 3; i++ {
		w := submit(r, "10.0.0.1:1234")
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := submit(r, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "提交过于频繁")
}

func TestRateLimitCountsClientsSeparately(t *testing.T) {
	counter := newFakeCounter()
	r := limitedRouter(counter, 1)

	assert.Equal(t, http.StatusOK, submit(r, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, submit(r, "10.0.0.1:1234").Code)

	// a different IP still has its own budget
	assert.Equal(t, http.StatusOK, submit(r, "10.0.0.2:1234").Code)
}

func TestRateLimitSetsWindowOnFirstHit(t *testing.T) {
	counter := newFakeCounter()
	r := limitedRouter(counter, 5)

	submit(r, "10.0.0.1:1234")
	submit(r, "10.0.0.1:1234")

	assert.Len(t, counter.expires, 1)
	for _, expiration := range counter.expires {
		assert.Equal(t, time.Minute, expiration)
	}
}

func TestRateLimitFailsOpenOnCounterError(t *testing.T) {
	counter := newFakeCounter()
	counter.incrErr = errors.New("connection refused")
	r := limitedRouter(counter, 1)

	for i := 0; i < 5; i++ {
		w := submit(r, "10.0.0.1:1234")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitDisabledWithoutCounter(t *testing.T) {
	r := limitedRouter(nil, 1)

	for i := 0; i < 5; i++ {
		w := submit(r, "10.0.0.1:1234")
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
