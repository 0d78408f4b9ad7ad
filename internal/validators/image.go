// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/MKhiriev/craft-catalog/models"
)

// Field names accepted by [ImageValidator].
const (
	FieldImageExtension   = "extension"
	FieldImageContentType = "content_type"
	FieldImageSize        = "size"
	FieldImageContent     = "content"
)

var imageFields = []string{FieldImageExtension, FieldImageContentType, FieldImageSize, FieldImageContent}

var (
	imageTypes = regexp.MustCompile(`jpeg|jpg|png|gif`)

	sniffedImageTypes = []string{"image/jpeg", "image/png", "image/gif"}
)

// sniffLen is how much of the upload is read for content detection.
const sniffLen = 3072

// ImageValidator accepts jpeg, png and gif uploads up to maxSize bytes.
//
// The extension of the client file name and the declared content type are
// both matched against the allow-list, and the first bytes of the content are
// sniffed with mimetype so a renamed file is rejected too.
type ImageValidator struct {
	maxSize int64
}

// NewImageValidator returns a Validator for *models.ImageUpload. A
// non-positive maxSize disables the size check.
func NewImageValidator(maxSize int64) Validator {
	return &ImageValidator{maxSize: maxSize}
}

// Validate requires a *models.ImageUpload: sniffing reads the head of
// Content, which is then replaced by a reader yielding the full content again.
func (v *ImageValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	image, ok := obj.(*models.ImageUpload)
	if !ok || image == nil {
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = imageFields
	}

	for _, f := range fields {
		switch f {
		case FieldImageExtension:
			if !imageTypes.MatchString(strings.ToLower(filepath.Ext(image.Filename))) {
				return ErrUnsupportedImageType
			}
		case FieldImageContentType:
			if !imageTypes.MatchString(strings.ToLower(image.ContentType)) {
				return ErrUnsupportedImageType
			}
		case FieldImageSize:
			if v.maxSize > 0 && image.Size > v.maxSize {
				return fmt.Errorf("%w: %d bytes, at most %d allowed", ErrImageTooLarge, image.Size, v.maxSize)
			}
		case FieldImageContent:
			if err := sniffImage(image); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func sniffImage(image *models.ImageUpload) error {
	if image.Content == nil {
		return ErrEmptyImage
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(image.Content, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("error reading image: %w", err)
	}
	head = head[:n]
	image.Content = io.MultiReader(bytes.NewReader(head), image.Content)

	if n == 0 {
		return ErrEmptyImage
	}

	detected := mimetype.Detect(head)
	for _, allowed := range sniffedImageTypes {
		if detected.Is(allowed) {
			return nil
		}
	}

	return fmt.Errorf("%w: detected %s", ErrUnsupportedImageType, detected.String())
}
