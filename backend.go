// Package filebackend implements a file-serving backend for a caching
// reverse proxy. Request paths are resolved into a root directory,
// validators are derived from file metadata, and conditional requests are
// answered with 304 responses where the client's copy is still current.
//
// The backend is stateless: every request opens its own file handle and
// computes its own validators, so it can be invoked concurrently from any
// number of workers. Response caching is the host's job.
package filebackend

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"

	urlpath "github.com/always-cache/file-backend/pkg/url-path"
	"github.com/always-cache/file-backend/pkg/validator"
	"github.com/always-cache/file-backend/rfc9110"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
)

type Config struct {
	// Directory all request paths resolve into. Must be non-empty.
	Root string
	// Content type to set on every response.
	// Leave empty to detect the type from the file contents.
	ContentType string
	// Logger to use. The global zerolog logger is used if nil.
	Logger *zerolog.Logger
}

// Request is the inbound request as exposed by the host.
type Request interface {
	Method() string
	// URL returns the path component of the request url.
	URL() string
	// Header returns the named header value and whether it was present.
	Header(name string) (string, bool)
}

// Response is the host's mutable response under construction.
type Response interface {
	SetStatus(statusCode int)
	SetHeader(name, value string)
	SetProtocol(proto string)
}

type Backend struct {
	root        string
	contentType string
	log         zerolog.Logger
}

// New initializes a backend serving files from config.Root.
func New(config Config) *Backend {
	// use global logger if not specified in config
	var logger zerolog.Logger
	if config.Logger == nil {
		logger = zerolog.New(zerolog.NewConsoleWriter())
	} else {
		logger = *config.Logger
	}

	// create a child logger and add defaults
	logger = logger.With().
		Str("root", config.Root).
		Logger()

	return &Backend{
		root:        config.Root,
		contentType: config.ContentType,
		log:         logger,
	}
}

// Respond answers a single request. It resolves the request url inside
// the backend root, derives validators from the file metadata and writes
// protocol, status and headers to res. For a GET that needs a body it
// returns a transfer bounded to the size read at decision time; in every
// other case the returned transfer is nil.
//
// An error is returned only when opening or inspecting the file fails.
// That is fatal for this request and surfaces to the host as a backend
// fetch failure; the host decides the client-visible status. Conditional
// header mismatches and malformed dates are never errors.
func (b *Backend) Respond(req Request, res Response) (*FileTransfer, error) {
	path := urlpath.Resolve(b.root, req.URL())
	b.log.Debug().Str("path", path).Msg("File on disk")

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading file metadata: %w", err)
	}
	meta, err := validator.FromFileInfo(info)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("reading file metadata: %w", err)
	}
	etag := meta.ETag()

	ifNoneMatch, _ := req.Header("if-none-match")
	ifModifiedSince, _ := req.Header("if-modified-since")

	res.SetProtocol("HTTP/1.1")

	decision := rfc9110.Evaluate(req.Method(), ifNoneMatch, ifModifiedSince, etag, meta.Modified)
	if decision == rfc9110.MethodNotAllowed {
		// strict in what methods are accepted, and no metadata
		// headers on this outcome
		res.SetStatus(http.StatusMethodNotAllowed)
		f.Close()
		return nil, nil
	}

	contentType, err := b.resolveContentType(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("detecting content type: %w", err)
	}

	if decision == rfc9110.NotModified {
		res.SetStatus(http.StatusNotModified)
	} else {
		res.SetStatus(http.StatusOK)
	}
	res.SetHeader("content-length", strconv.FormatInt(meta.Size, 10))
	res.SetHeader("etag", etag)
	res.SetHeader("last-modified", meta.LastModified())
	res.SetHeader("content-type", contentType)

	// only a GET that was not answered with 304 carries a body;
	// the transfer then owns the file handle
	if decision == rfc9110.Serve && req.Method() == http.MethodGet {
		return newFileTransfer(f, meta.Size), nil
	}
	f.Close()
	return nil, nil
}

// resolveContentType returns the configured content type, or detects one
// from the open file when none is configured. The read position is
// rewound afterwards so the body transfer starts at the beginning.
func (b *Backend) resolveContentType(f *os.File) (string, error) {
	if b.contentType != "" {
		return b.contentType, nil
	}
	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mtype.String(), nil
}
