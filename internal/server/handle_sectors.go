package server

import "net/http"

func handleListSectors(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectors, err := store.ListSectors(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, sectors)
	}
}
