package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/volunteer-server/internal/testutil"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type observation struct {
	method string
	route  string
	status int
}

type recordingObserver struct {
	mu  sync.Mutex
	got []observation
}

func (r *recordingObserver) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, observation{method: method, route: route, status: status})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	observer := &recordingObserver{}
	r := gin.New()
	r.Use(NewLogging(testutil.MakeNoopLogger()).Handle, NewMetrics(observer).Handle)
	r.GET("/API/media/*key", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/API/fail", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	tests := []struct {
		name   string
		method string
		path   string
		want   observation
	}{
		{
			name:   "path parameters collapse to the route",
			method: http.MethodGet,
			path:   "/API/media/events/a.png",
			want:   observation{method: http.MethodGet, route: "/API/media/*key", status: http.StatusOK},
		},
		{
			name:   "server error",
			method: http.MethodPost,
			path:   "/API/fail",
			want:   observation{method: http.MethodPost, route: "/API/fail", status: http.StatusInternalServerError},
		},
		{
			name:   "unmatched",
			method: http.MethodGet,
			path:   "/nope",
			want:   observation{method: http.MethodGet, route: "unmatched", status: http.StatusNotFound},
		},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.want.status, w.Code, tt.name)
	}

	require.Len(t, observer.got, len(tests))
	for i, tt := range tests {
		assert.Equal(t, tt.want, observer.got[i], tt.name)
	}
}
