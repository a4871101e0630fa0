package http

import (
	"mime"
	"net/http"

	"github.com/gigmarket/gigchat/types"
	"github.com/matryer/way"
)

func (h *handler) notifications(w http.ResponseWriter, r *http.Request) {
	if a, _, err := mime.ParseMediaType(r.Header.Get("Accept")); err == nil && a == "text/event-stream" {
		h.notificationStream(w, r)
		return
	}

	pageArgs, err := parsePageArgs(r.URL.Query())
	if err != nil {
		h.respondErr(w, err)
		return
	}

	page, err := h.svc.Notifications(r.Context(), types.ListNotifications{PageArgs: pageArgs})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	if page.Items == nil {
		page.Items = []types.Notification{} // non null array
	}

	h.respond(w, page, http.StatusOK)
}

func (h *handler) notificationStream(w http.ResponseWriter, r *http.Request) {
	f, ok := w.(http.Flusher)
	if !ok {
		h.respondErr(w, errStreamingUnsupported)
		return
	}

	ctx := r.Context()
	nn, err := h.svc.NotificationStream(ctx)
	if err != nil {
		h.respondErr(w, err)
		return
	}

	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Content-Type", "text/event-stream; charset=utf-8")
	f.Flush()

	for n := range nn {
		h.writeSSE(w, n)
		f.Flush()
	}
}

func (h *handler) readNotification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	err := h.svc.ReadNotification(ctx, types.ReadNotification{
		NotificationID: way.Param(ctx, "notification_id"),
	})
	if err != nil {
		h.respondErr(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
