package http

import (
	"net/http"
	"strconv"
	"strings"

	"wahlboard/internal/core"
	"wahlboard/internal/view"
)

// parseControls reads the UI control state from query parameters.
// Parsing is lenient: anything invalid falls back to the defaults
// (overview mode, second votes, first state, maximum top-N).
func (s *Server) parseControls(r *http.Request) view.Controls {
	c := view.DefaultControls(s.data)
	q := r.URL.Query()

	if v := strings.TrimSpace(q.Get("mode")); v == string(view.ModeState) {
		c.Mode = view.ModeState
	}
	if vt := core.VoteType(strings.TrimSpace(q.Get("vote"))); vt.IsValid() {
		c.VoteType = vt
	}
	switch strings.TrimSpace(q.Get("share")) {
	case "first_share", string(core.First):
		c.ShareType = core.First
	case "second_share", string(core.Second):
		c.ShareType = core.Second
	}
	if v := strings.TrimSpace(q.Get("state")); v != "" && s.hasState(v) {
		c.State = v
	}
	if v := strings.TrimSpace(q.Get("top")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TopN = core.ClampTopN(n)
		}
	}
	return c
}

func (s *Server) hasState(state string) bool {
	for _, st := range s.data.States() {
		if st == state {
			return true
		}
	}
	return false
}
