// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// ImagesURLPrefix is the first segment of every image reference; the HTTP
// layer serves the local backend under the same path.
const ImagesURLPrefix = "uploads"

// imageName returns "image-<unix millis><ext>" with the extension of the
// client-side file name lower-cased.
func imageName(now time.Time, filename string) string {
	return fmt.Sprintf("image-%d%s", now.UnixMilli(), strings.ToLower(filepath.Ext(filename)))
}

// uniqueImageName appends suffix before the extension of name.
func uniqueImageName(name, suffix string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + "-" + suffix + ext
}

func imageRef(name string) string {
	return path.Join(ImagesURLPrefix, name)
}

// imageNameFromRef validates ref and returns the bare file name behind it.
func imageNameFromRef(ref string) (string, error) {
	name, ok := strings.CutPrefix(ref, ImagesURLPrefix+"/")
	if !ok || name == "" || name != path.Base(name) || name == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidImageRef, ref)
	}

	return name, nil
}
