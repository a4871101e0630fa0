package http

import (
	"net/http"
	"strings"

	"github.com/gigmarket/gigchat/auth"
)

func (h *handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(a, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			h.respondErr(w, errMissingToken)
			return
		}

		userID, err := h.tokens.Decode(strings.TrimSpace(token))
		if err != nil {
			h.respondErr(w, err)
			return
		}

		ctx := auth.ContextWithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
