package http

import (
	"net/http"

	"github.com/gigmarket/gigchat/types"
	"github.com/matryer/way"
)

func (h *handler) roster(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	out, err := h.svc.Roster(ctx, types.RetrieveRoster{
		EventID: way.Param(ctx, "event_id"),
	})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	if out == nil {
		out = []types.Identity{} // non null array
	}

	h.respond(w, out, http.StatusOK)
}

func (h *handler) markEventRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	err := h.svc.MarkEventRead(ctx, types.MarkEventRead{
		EventID: way.Param(ctx, "event_id"),
	})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
