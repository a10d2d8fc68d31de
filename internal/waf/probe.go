package waf

import (
	"context"
	"strings"
	"time"

	"github.com/valyala/fasthttp"
)

const (
	defaultUserAgent = "evasor-detector/1.0"
	probeTimeout     = 10 * time.Second
)

// nowMillis returns the wall-clock time in Unix milliseconds, used to
// measure probe round-trip time by pairing a start/end call around the same
// fasthttp round trip.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// Prober issues single-request fetches against a target (C1). It owns the
// fasthttp client so every caller shares connection pooling, matching the
// teacher's request/send_request.go idiom of Acquire/Release around every
// call and copying the response before release so pooled buffers can't be
// reused out from under the caller.
type Prober struct {
	client    *fasthttp.Client
	userAgent string
}

// NewProber builds a Prober with sane timeouts for fingerprinting traffic.
func NewProber(userAgent string) *Prober {
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Prober{
		client: &fasthttp.Client{
			ReadTimeout:         probeTimeout,
			WriteTimeout:        probeTimeout,
			MaxIdemponentCallAttempts: 1,
		},
		userAgent: userAgent,
	}
}

// Fetch performs a single GET against url and returns a self-contained
// ProbeResponse (headers copied, body copied) safe to use after the
// fasthttp request/response objects are released back to their pools.
// ctx cancellation aborts the wait for this probe promptly (spec.md §5):
// the underlying fasthttp round trip runs on its own goroutine and a
// cancelled ctx makes Fetch return immediately rather than block on it.
func (p *Prober) Fetch(ctx context.Context, url string) *ProbeResponse {
	return p.fetchWithHeaders(ctx, url, nil)
}

// FetchWithHeader performs a GET with one extra request header set — used
// by the timing analyser and payload prober's scanner-detection category.
func (p *Prober) FetchWithHeader(ctx context.Context, url, headerName, headerValue string) *ProbeResponse {
	return p.fetchWithHeaders(ctx, url, map[string]string{headerName: headerValue})
}

func (p *Prober) fetchWithHeaders(ctx context.Context, url string, extraHeaders map[string]string) *ProbeResponse {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("User-Agent", p.userAgent)
	for k, v := range extraHeaders {
		req.Header.Set(k, v)
	}

	done := make(chan *ProbeResponse, 1)
	go func() {
		defer fasthttp.ReleaseRequest(req)
		defer fasthttp.ReleaseResponse(resp)

		var err error
		if deadline, ok := ctx.Deadline(); ok {
			err = p.client.DoDeadline(req, resp, deadline)
		} else {
			err = p.client.Do(req, resp)
		}
		if err != nil {
			done <- &ProbeResponse{Err: err}
			return
		}

		out := &ProbeResponse{
			StatusCode: resp.StatusCode(),
			Headers:    make(map[string]string),
			Body:       string(resp.Body()),
		}
		resp.Header.VisitAll(func(key, value []byte) {
			out.Headers[strings.ToLower(string(key))] = string(value)
		})
		done <- out
	}()

	select {
	case <-ctx.Done():
		return &ProbeResponse{Err: ctx.Err()}
	case out := <-done:
		return out
	}
}

// sleepCtx waits out d, or returns early (reporting false) the moment ctx is
// cancelled — used anywhere a fixed inter-probe delay would otherwise block
// past a caller's cancellation (spec.md §5: "must promptly abandon
// outstanding probes").
func sleepCtx(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
