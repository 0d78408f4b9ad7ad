// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/craft-catalog/internal/app"
	"github.com/MKhiriev/craft-catalog/internal/utils"
)

// serveUploads serves stored images from the upload directory. Directory
// listings are never served.
func (h *Handler) serveUploads() http.HandlerFunc {
	files := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir)))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
			return
		}

		files.ServeHTTP(w, r)
	}
}
