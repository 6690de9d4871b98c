package filebackend

import (
	"io"
	"net/http"
)

// ServeHTTP adapts the backend to net/http so it can be mounted in any
// stdlib-compatible serving loop. Backend fetch failures map to a plain
// 502 with no error detail, so resolved paths never reach the client.
func (b *Backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := &httpResponse{w: w}
	transfer, err := b.Respond(httpRequest{r}, res)
	if err != nil {
		b.log.Error().Err(err).Msg("Backend fetch failed")
		w.WriteHeader(http.StatusBadGateway)
		return
	}
	w.WriteHeader(res.status)
	if transfer == nil {
		return
	}
	defer transfer.Close()
	if written, err := io.Copy(w, transfer); err != nil {
		// too late for a clean error response, the client gets a
		// truncated body
		b.log.Error().Err(err).Int64("written", written).Msg("Could not write response body to client")
	}
}

type httpRequest struct {
	r *http.Request
}

func (h httpRequest) Method() string {
	return h.r.Method
}

func (h httpRequest) URL() string {
	return h.r.URL.Path
}

func (h httpRequest) Header(name string) (string, bool) {
	values, ok := h.r.Header[http.CanonicalHeaderKey(name)]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// httpResponse defers the status line until Respond has finished, since
// net/http headers must be complete before WriteHeader.
type httpResponse struct {
	w      http.ResponseWriter
	status int
}

func (h *httpResponse) SetStatus(statusCode int) {
	h.status = statusCode
}

func (h *httpResponse) SetHeader(name, value string) {
	h.w.Header().Set(name, value)
}

func (h *httpResponse) SetProtocol(proto string) {
	// net/http owns the protocol line; the backend only ever speaks
	// HTTP/1.1 semantics
}
