package v1handler

import (
	"fmt"
	"net/http"

	"github.com/go-faster/jx"
)

// LIFFEnv serves the script defining window.__LIFF_ENV__ for the form.
func (h *Handler) LIFFEnv(w http.ResponseWriter, _ *http.Request) {
	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("LIFF_ID", func(e *jx.Encoder) { e.Str(h.opts.LIFFID) })
		e.Field("BASE_URL", func(e *jx.Encoder) { e.Str(h.opts.BaseURL) })
	})

	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = fmt.Fprintf(w, "window.__LIFF_ENV__ = %s;", e.Bytes())
}
