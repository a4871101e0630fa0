package http

import (
	"encoding/json"
	"net/http"

	"github.com/gigmarket/gigchat/types"
	"github.com/matryer/way"
)

func (h *handler) messageSent(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var in types.MessageSent
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondErr(w, errBadRequest)
		return
	}

	ctx := r.Context()
	in.EventID = way.Param(ctx, "event_id")
	if err := h.svc.MessageSent(ctx, in); err != nil {
		h.respondErr(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
