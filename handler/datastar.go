package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

const (
	// DataStarAcceptHeader is sent by Datastar fetch actions.
	DataStarAcceptHeader = "text/event-stream"
	// DataStarQueryParam carries signals on GET requests.
	DataStarQueryParam = "datastar"
	// DataStarRequestHeader is set on every Datastar request.
	DataStarRequestHeader = "Datastar-Request"
)

// IsDataStar reports whether r was issued by Datastar and expects SSE.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get(DataStarRequestHeader) == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), DataStarAcceptHeader) {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// ReadSignals decodes the Datastar signals of r into v.
func ReadSignals(r *http.Request, v any) error {
	return datastar.ReadSignals(r, v)
}

type streamResponse struct {
	signals any
	patches []TemplPatch
}

func (s streamResponse) Render(w http.ResponseWriter, r *http.Request) error {
	sse := datastar.NewSSE(w, r)
	if s.signals != nil {
		data, err := json.Marshal(s.signals)
		if err != nil {
			return err
		}
		if err := sse.PatchSignals(data); err != nil {
			return err
		}
	}
	for _, p := range s.patches {
		if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
			return err
		}
	}
	return nil
}

// Signals streams a signal patch followed by element patches. A nil signals
// value sends only the element patches.
func Signals(signals any, patches ...TemplPatch) Response {
	return streamResponse{signals: signals, patches: patches}
}
