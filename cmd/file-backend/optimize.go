package main

import (
	"image"
	"image/draw"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/always-cache/file-backend/pkg/images"
	urlpath "github.com/always-cache/file-backend/pkg/url-path"

	"github.com/rs/zerolog/log"

	// source formats for on-the-fly optimization
	_ "image/jpeg"
	_ "image/png"
)

// optimizeHandler serves files under root transcoded to lossy webp.
// The source is decoded, converted to an encodable layout and re-encoded
// on every request; caching the result is the proxy's job.
func optimizeHandler(root string, quality float32, autofilter bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		path := urlpath.Resolve(root, strings.TrimPrefix(r.URL.Path, "/optimized"))
		log.Debug().Str("path", path).Msg("Optimizing file on disk")

		f, err := os.Open(path)
		if err != nil {
			log.Error().Err(err).Msg("Could not open source file")
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		defer f.Close()

		src, _, err := image.Decode(f)
		if err != nil {
			log.Error().Err(err).Msg("Could not decode source file")
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		encoded, err := images.ToWebP(toEncodable(src), quality, autofilter)
		if err != nil {
			log.Error().Err(err).Msg("Could not encode webp")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("content-type", "image/webp")
		w.Header().Set("content-length", strconv.Itoa(len(encoded.Data())))
		if _, err := w.Write(encoded.Data()); err != nil {
			log.Error().Err(err).Msg("Could not write response body to client")
		}
	}
}

// toEncodable redraws pixel layouts the encoder rejects (jpeg sources
// decode to YCbCr, for instance) onto an NRGBA canvas.
func toEncodable(src image.Image) image.Image {
	switch src.(type) {
	case *image.Gray, *image.RGBA, *image.NRGBA:
		return src
	}
	dst := image.NewNRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}
