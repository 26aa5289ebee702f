package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/wevraa-admin/internal/client/credentials"
	"github.com/dmitrijs2005/wevraa-admin/internal/client/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const refreshedBody = `{"accessToken":"new","refreshToken":"R2","expiresIn":86400,
	"user":{"id":"u1","email":"a@b.com","firstName":"Asha","lastName":"Rao","role":"admin"}}`

type harness struct {
	srv     *httptest.Server
	client  *Client
	store   *credentials.KVStore
	metrics *Metrics
	reg     *prometheus.Registry
}

func newHarness(t *testing.T, h http.Handler) *harness {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	store := credentials.NewMemoryStore()
	c := New(Prefix(srv.URL, "v1"), store, WithMetrics(m), WithTimeout(5*time.Second))

	return &harness{srv: srv, client: c, store: store, metrics: m, reg: reg}
}

func (h *harness) login(t *testing.T, access, refresh string) {
	t.Helper()
	require.NoError(t, h.store.SetTokens(context.Background(), access, refresh, 86400))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// refreshCounter serves /api/v1/auth/refresh with refreshedBody.
type refreshCounter struct {
	calls atomic.Int32
	delay time.Duration
}

func (rc *refreshCounter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rc.calls.Add(1)
	time.Sleep(rc.delay)
	writeJSON(w, http.StatusOK, refreshedBody)
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		prefix, path, want string
	}{
		{"http://h/api/v1/", "/products", "http://h/api/v1/products"},
		{"http://h/api/v1", "products", "http://h/api/v1/products"},
		{"http://h/api/v1", "/products", "http://h/api/v1/products"},
		{"http://h/api/v1/", "products", "http://h/api/v1/products"},
		{"http://h/api/v1//", "//products/1", "http://h/api/v1/products/1"},
		{"http://h/api/v1", "https://cdn.example.com/x.png", "https://cdn.example.com/x.png"},
		{"http://h/api/v1", "HTTP://other/y", "HTTP://other/y"},
	}
	for _, tt := range tests {
		t.Run(tt.prefix+"+"+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildURL(tt.prefix, tt.path))
		})
	}
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, "http://localhost:3000/api/v1", Prefix("http://localhost:3000/", "v1"))
	assert.Equal(t, "http://localhost:3000/api/v1", Prefix("http://localhost:3000", "/v1"))
}

func TestDo_AttachesBearerAndDecodes(t *testing.T) {
	var gotAuth, gotCT, gotPath string
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCT = r.Header.Get("Content-Type")
		gotPath = r.URL.RequestURI()
		writeJSON(w, http.StatusOK, `{"id":"p1","name":"Kurta"}`)
	}))
	h.login(t, "A1", "R1")

	var out struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	err := h.client.Do(context.Background(), Request{
		Path:  "/products/p1",
		Query: url.Values{"expand": {"media"}},
	}, &out)
	require.NoError(t, err)

	assert.Equal(t, "Bearer A1", gotAuth)
	assert.Equal(t, "application/json", gotCT)
	assert.Equal(t, "/api/v1/products/p1?expand=media", gotPath)
	assert.Equal(t, "Kurta", out.Name)
}

func TestDo_SkipAuthOmitsAuthorization(t *testing.T) {
	var gotAuth []string
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Values("Authorization")
		writeJSON(w, http.StatusOK, `{}`)
	}))
	h.login(t, "A1", "R1")

	require.NoError(t, h.client.Do(context.Background(), Request{Method: http.MethodPost, Path: "/auth/login", SkipAuth: true}, nil))
	assert.Empty(t, gotAuth)
}

func TestDo_CallerHeadersOverrideDefaults(t *testing.T) {
	var gotCT, gotID string
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCT = r.Header.Get("Content-Type")
		gotID = r.Header.Get(RequestIDHeader)
		writeJSON(w, http.StatusOK, `{}`)
	}))

	err := h.client.Do(context.Background(), Request{
		Method: http.MethodPut,
		Path:   "/x",
		Header: http.Header{"content-type": {"text/plain"}, RequestIDHeader: {"fixed"}},
		Body:   []byte("hello"),
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "text/plain", gotCT)
	assert.Equal(t, "fixed", gotID)
}

// Login, call a protected endpoint, get a 401, refresh and retry.
func TestDo_RefreshesAndRetriesWithNewToken(t *testing.T) {
	refresh := &refreshCounter{}
	var (
		mu       sync.Mutex
		seen     []string
		ids      []string
		loginReq models.LoginRequest
	)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&loginReq)
		writeJSON(w, http.StatusOK, `{"accessToken":"old","refreshToken":"R1","expiresIn":3600,"user":{"id":"u1","email":"a@b.com"}}`)
	})
	mux.Handle("POST /api/v1/auth/refresh", refresh)
	mux.HandleFunc("GET /api/v1/orders", func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Header.Get("Authorization"))
		ids = append(ids, r.Header.Get(RequestIDHeader))
		mu.Unlock()
		if r.Header.Get("Authorization") != "Bearer new" {
			writeJSON(w, http.StatusUnauthorized, `{"message":"jwt expired"}`)
			return
		}
		writeJSON(w, http.StatusOK, `[{"id":"o1"}]`)
	})
	h := newHarness(t, mux)
	ctx := context.Background()

	session, err := Call[models.Session](ctx, h.client, Request{
		Method:   http.MethodPost,
		Path:     "/auth/login",
		Body:     models.LoginRequest{Email: "a@b.com", Password: "x"},
		SkipAuth: true,
	})
	require.NoError(t, err)
	require.NoError(t, credentials.SaveSession(ctx, h.store, &session))
	assert.Equal(t, "a@b.com", loginReq.Email)

	orders, err := Call[[]map[string]string](ctx, h.client, Request{Path: "orders"})
	require.NoError(t, err)
	assert.Equal(t, []map[string]string{{"id": "o1"}}, orders)

	assert.Equal(t, []string{"Bearer old", "Bearer new"}, seen)
	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.Equal(t, ids[0], ids[1])
	assert.EqualValues(t, 1, refresh.calls.Load())

	rt, err := h.store.RefreshToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "R2", rt)
	u, err := h.store.User(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "Asha Rao", u.FullName())

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.refreshes.WithLabelValues(refreshSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.requests.WithLabelValues(http.MethodGet, "401")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.requests.WithLabelValues(http.MethodGet, "200")))
}

// Every request is held until all n have arrived with the stale token, so
// all of them see a 401 before any refresh completes.
func TestDo_ConcurrentUnauthorizedShareOneRefresh(t *testing.T) {
	for _, n := range []int{2, 8} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			refresh := &refreshCounter{delay: 20 * time.Millisecond}
			var (
				barrier sync.WaitGroup
				mu      sync.Mutex
				retried []string
			)
			barrier.Add(n)

			mux := http.NewServeMux()
			mux.Handle("POST /api/v1/auth/refresh", refresh)
			mux.HandleFunc("GET /api/v1/products", func(w http.ResponseWriter, r *http.Request) {
				auth := r.Header.Get("Authorization")
				if auth == "Bearer old" {
					barrier.Done()
					barrier.Wait()
					writeJSON(w, http.StatusUnauthorized, `{}`)
					return
				}
				mu.Lock()
				retried = append(retried, auth)
				mu.Unlock()
				writeJSON(w, http.StatusOK, `[]`)
			})
			h := newHarness(t, mux)
			h.login(t, "old", "R1")

			var wg sync.WaitGroup
			errs := make([]error, n)
			for i := range n {
				wg.Add(1)
				go func() {
					defer wg.Done()
					errs[i] = h.client.Do(context.Background(), Request{Path: "/products"}, nil)
				}()
			}
			wg.Wait()

			for _, err := range errs {
				require.NoError(t, err)
			}
			assert.EqualValues(t, 1, refresh.calls.Load())
			require.Len(t, retried, n)
			for _, auth := range retried {
				assert.Equal(t, "Bearer new", auth)
			}
		})
	}
}

func TestDo_NoRefreshTokenShortCircuits(t *testing.T) {
	refresh := &refreshCounter{}
	mux := http.NewServeMux()
	mux.Handle("POST /api/v1/auth/refresh", refresh)
	mux.HandleFunc("GET /api/v1/products", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"Unauthorized"}`)
	})
	h := newHarness(t, mux)

	err := h.client.Do(context.Background(), Request{Path: "/products"}, nil)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNoRefreshToken, apiErr.Kind)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "No refresh token", apiErr.Message)
	assert.ErrorIs(t, err, ErrNoRefreshToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.True(t, IsSessionLost(err))
	assert.Zero(t, refresh.calls.Load())
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.refreshes.WithLabelValues(refreshNoToken)))
}

func TestDo_RefreshFailureCollapsesToSessionExpired(t *testing.T) {
	tests := []struct {
		name    string
		refresh http.HandlerFunc
	}{
		{
			name: "rejected",
			refresh: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusBadRequest, `{"message":"invalid refresh token"}`)
			},
		},
		{
			name: "server error without body",
			refresh: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "connection dropped",
			refresh: func(w http.ResponseWriter, r *http.Request) {
				conn, _, err := w.(http.Hijacker).Hijack()
				if err == nil {
					_ = conn.Close()
				}
			},
		},
		{
			name: "success without tokens",
			refresh: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, `not json`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var protected atomic.Int32
			mux := http.NewServeMux()
			mux.HandleFunc("POST /api/v1/auth/refresh", tt.refresh)
			mux.HandleFunc("GET /api/v1/products", func(w http.ResponseWriter, r *http.Request) {
				protected.Add(1)
				writeJSON(w, http.StatusUnauthorized, `{}`)
			})
			h := newHarness(t, mux)
			h.login(t, "old", "R1")

			err := h.client.Do(context.Background(), Request{Path: "/products"}, nil)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, KindSessionExpired, apiErr.Kind)
			assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
			assert.Equal(t, "Session expired", apiErr.Message)
			assert.ErrorIs(t, err, ErrSessionExpired)
			assert.EqualValues(t, 1, protected.Load(), "no retry after a failed refresh")
			assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.refreshes.WithLabelValues(refreshFailure)))

			at, err := h.store.AccessToken(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "old", at)
		})
	}
}

func TestRefresh_SlotClearsAfterEachOutcome(t *testing.T) {
	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		switch refreshCalls.Add(1) {
		case 1:
			writeJSON(w, http.StatusServiceUnavailable, `{}`)
		case 2:
			writeJSON(w, http.StatusOK, refreshedBody)
		default:
			writeJSON(w, http.StatusOK, `{"accessToken":"newer","refreshToken":"R3","expiresIn":86400,"user":{"id":"u1"}}`)
		}
	})
	mux.HandleFunc("GET /api/v1/products", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("expire") == "1" || r.Header.Get("Authorization") == "Bearer old" {
			writeJSON(w, http.StatusUnauthorized, `{}`)
			return
		}
		writeJSON(w, http.StatusOK, `{}`)
	})
	h := newHarness(t, mux)
	h.login(t, "old", "R1")
	ctx := context.Background()

	err := h.client.Do(ctx, Request{Path: "/products"}, nil)
	require.ErrorIs(t, err, ErrSessionExpired)

	require.NoError(t, h.client.Do(ctx, Request{Path: "/products"}, nil))
	assert.EqualValues(t, 2, refreshCalls.Load())

	// The token is rejected again after a successful refresh.
	err = h.client.Do(ctx, Request{Path: "/products", Query: url.Values{"expire": {"1"}}}, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindRequestFailed, apiErr.Kind)
	assert.EqualValues(t, 3, refreshCalls.Load())

	at, err := h.store.AccessToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "newer", at)
}

func TestRefresh_CallerCancellationLeavesSharedRefreshRunning(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-release
		writeJSON(w, http.StatusOK, refreshedBody)
	})
	h := newHarness(t, mux)
	h.login(t, "old", "R1")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := h.client.Refresh(ctx)
		done <- err
	}()

	<-started
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	close(release)
	assert.Eventually(t, func() bool {
		at, _ := h.store.AccessToken(context.Background())
		return at == "new"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestRefresh_ReturnsPersistedSession(t *testing.T) {
	var body models.RefreshRequest
	var auth []string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Values("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&body)
		writeJSON(w, http.StatusOK, refreshedBody)
	})
	h := newHarness(t, mux)
	h.login(t, "old", "R1")

	s, err := h.client.Refresh(context.Background())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "new", s.AccessToken)
	assert.Equal(t, "R1", body.RefreshToken)
	assert.Empty(t, auth)
}

func TestDo_MultipartAndBinaryNeverJSON(t *testing.T) {
	type seen struct {
		ct, field, file, filename string
	}
	var got seen
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = seen{ct: r.Header.Get("Content-Type")}
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			got.field = r.FormValue("name")
			f, hdr, err := r.FormFile("image")
			if err == nil {
				data, _ := io.ReadAll(f)
				got.file = string(data)
				got.filename = hdr.Filename
			}
		}
		writeJSON(w, http.StatusCreated, `{"id":"c1"}`)
	}))
	ctx := context.Background()

	err := h.client.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/collections/with-image",
		Header: http.Header{"Content-Type": {"application/json"}},
		Body: &Form{
			Fields: map[string]string{"name": "Bridal"},
			Files:  []FormFile{{Field: "image", Filename: "b.png", ContentType: "image/png", Data: []byte("PNG")}},
		},
	}, nil)
	require.NoError(t, err)
	assert.Contains(t, got.ct, "multipart/form-data; boundary=")
	assert.Equal(t, "Bridal", got.field)
	assert.Equal(t, "PNG", got.file)
	assert.Equal(t, "b.png", got.filename)

	err = h.client.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   "/blob",
		Body:   Binary{Data: []byte{0xff}, ContentType: "image/jpeg"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", got.ct)

	err = h.client.Do(ctx, Request{Method: http.MethodPut, Path: "/blob", Body: &Binary{Data: []byte{1}}}, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/octet-stream", got.ct)
}

func TestDo_MultipartRetryResendsBody(t *testing.T) {
	var bodies []string
	mux := http.NewServeMux()
	mux.Handle("POST /api/v1/auth/refresh", &refreshCounter{})
	mux.HandleFunc("POST /api/v1/upload/image", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseMultipartForm(1 << 20)
		f, _, err := r.FormFile("file")
		if err == nil {
			data, _ := io.ReadAll(f)
			bodies = append(bodies, string(data))
		}
		if r.Header.Get("Authorization") != "Bearer new" {
			writeJSON(w, http.StatusUnauthorized, `{}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"url":"https://cdn/x.png"}`)
	})
	h := newHarness(t, mux)
	h.login(t, "old", "R1")

	out, err := Call[models.UploadResponse](context.Background(), h.client, Request{
		Method: http.MethodPost,
		Path:   "/upload/image",
		Body:   &Form{Files: []FormFile{{Field: "file", Filename: "x.png", Data: []byte("IMG")}}},
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/x.png", out.URL)
	assert.Equal(t, []string{"IMG", "IMG"}, bodies)
}

func TestDo_MalformedBodyTolerance(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{name: "empty 200", status: http.StatusOK, body: ""},
		{name: "no content", status: http.StatusNoContent, body: ""},
		{name: "html 200", status: http.StatusOK, body: "<html>ok</html>"},
		{name: "null 200", status: http.StatusOK, body: "null"},
		{name: "html 502", status: http.StatusBadGateway, body: "<html>bad gateway</html>", wantErr: "Request failed: 502"},
		{name: "empty 404", status: http.StatusNotFound, body: "", wantErr: "Request failed: 404"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))

			out := map[string]any{"untouched": true}
			err := h.client.Do(context.Background(), Request{Path: "/x"}, &out)

			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, map[string]any{"untouched": true}, out)
				return
			}
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantErr, apiErr.Message)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, map[string]any{}, apiErr.Body)
		})
	}
}

func TestDo_ErrorMessageFromBody(t *testing.T) {
	tests := []struct {
		name, body, want string
	}{
		{"string", `{"message":"Product not found"}`, "Product not found"},
		{"list", `{"message":["name should not be empty","price must be a number"]}`, "name should not be empty, price must be a number"},
		{"empty string", `{"message":""}`, "Request failed: 422"},
		{"other shape", `{"error":"x"}`, "Request failed: 422"},
		{"array body", `[1,2]`, "Request failed: 422"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusUnprocessableEntity, tt.body)
			}))
			err := h.client.Do(context.Background(), Request{Method: http.MethodPost, Path: "/products"}, nil)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.want, apiErr.Message)
			assert.Equal(t, KindRequestFailed, apiErr.Kind)
			assert.NotNil(t, apiErr.Body)
			assert.False(t, errors.Is(err, ErrUnauthorized))
		})
	}
}

func TestDo_OnlyUnauthorizedIsRetried(t *testing.T) {
	refresh := &refreshCounter{}
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.Handle("POST /api/v1/auth/refresh", refresh)
	mux.HandleFunc("GET /api/v1/users", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusForbidden, `{"message":"Forbidden resource"}`)
	})
	h := newHarness(t, mux)
	h.login(t, "old", "R1")

	err := h.client.Do(context.Background(), Request{Path: "/users"}, nil)
	require.ErrorIs(t, err, ErrForbidden)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.False(t, IsSessionLost(err))
	assert.EqualValues(t, 1, calls.Load())
	assert.Zero(t, refresh.calls.Load())
}

func TestDo_RetryStillUnauthorizedFails(t *testing.T) {
	refresh := &refreshCounter{}
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.Handle("POST /api/v1/auth/refresh", refresh)
	mux.HandleFunc("GET /api/v1/users", func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusUnauthorized, `{"message":"Unauthorized"}`)
	})
	h := newHarness(t, mux)
	h.login(t, "old", "R1")

	err := h.client.Do(context.Background(), Request{Path: "/users"}, nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindRequestFailed, apiErr.Kind)
	assert.Equal(t, "Unauthorized", apiErr.Message)
	assert.EqualValues(t, 2, calls.Load())
	assert.EqualValues(t, 1, refresh.calls.Load())
}

func TestDo_SkipRefreshReturnsUnauthorized(t *testing.T) {
	refresh := &refreshCounter{}
	mux := http.NewServeMux()
	mux.Handle("POST /api/v1/auth/refresh", refresh)
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
	})
	h := newHarness(t, mux)
	h.login(t, "old", "R1")

	err := h.client.Do(context.Background(), Request{
		Method: http.MethodPost, Path: "/auth/login", SkipAuth: true, SkipRefresh: true,
	}, nil)
	require.EqualError(t, err, "Invalid credentials")
	assert.Zero(t, refresh.calls.Load())
}

func TestDo_TransportErrorPropagates(t *testing.T) {
	h := newHarness(t, http.NotFoundHandler())
	h.srv.Close()

	err := h.client.Do(context.Background(), Request{Path: "/products"}, nil)
	require.Error(t, err)

	var urlErr *url.Error
	assert.ErrorAs(t, err, &urlErr)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.requests.WithLabelValues(http.MethodGet, "error")))
}

func TestDo_AbsolutePathBypassesPrefix(t *testing.T) {
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"path":"`+r.URL.Path+`"}`)
	}))
	defer other.Close()
	h := newHarness(t, http.NotFoundHandler())

	out, err := Call[map[string]string](context.Background(), h.client, Request{Path: other.URL + "/health"})
	require.NoError(t, err)
	assert.Equal(t, "/health", out["path"])
}

func TestMetrics_Registered(t *testing.T) {
	h := newHarness(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	}))
	require.NoError(t, h.client.Do(context.Background(), Request{Method: http.MethodDelete, Path: "/x/1"}, nil))

	n, err := testutil.GatherAndCount(h.reg, "wevraa_client_requests_total", "wevraa_client_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.requests.WithLabelValues(http.MethodDelete, "200")))
}

type countingTransport struct {
	calls atomic.Int32
}

func (ct *countingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	ct.calls.Add(1)
	return http.DefaultTransport.RoundTrip(r)
}

func TestNew_TimeoutAndHTTPClientCombineInAnyOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	}))
	t.Cleanup(srv.Close)

	tests := []struct {
		name  string
		order func(hc *http.Client) []Option
	}{
		{"timeout first", func(hc *http.Client) []Option {
			return []Option{WithTimeout(2 * time.Second), WithHTTPClient(hc)}
		}},
		{"client first", func(hc *http.Client) []Option {
			return []Option{WithHTTPClient(hc), WithTimeout(2 * time.Second)}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := &countingTransport{}
			hc := &http.Client{Transport: rt}
			c := New(Prefix(srv.URL, "v1"), credentials.NewMemoryStore(), tt.order(hc)...)

			assert.Equal(t, 2*time.Second, c.http.Timeout)
			assert.Zero(t, hc.Timeout, "caller's client is left untouched")

			require.NoError(t, c.Do(context.Background(), Request{Path: "/products"}, nil))
			assert.EqualValues(t, 1, rt.calls.Load())
		})
	}
}

func TestNew_DefaultTimeout(t *testing.T) {
	c := New("http://localhost", credentials.NewMemoryStore())
	assert.Equal(t, 30*time.Second, c.http.Timeout)

	hc := &http.Client{Timeout: time.Second}
	c = New("http://localhost", credentials.NewMemoryStore(), WithHTTPClient(hc))
	assert.Same(t, hc, c.http)
}
