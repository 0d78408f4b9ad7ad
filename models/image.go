// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "io"

// ImageUpload is an image file received together with a new item.
// Content is consumed exactly once by the image storage.
type ImageUpload struct {
	// Filename is the original client-side file name; only its extension is
	// kept when the image is stored.
	Filename string

	// ContentType is the media type declared by the client for the file part.
	ContentType string

	// Size is the declared size in bytes.
	Size int64

	Content io.Reader
}
