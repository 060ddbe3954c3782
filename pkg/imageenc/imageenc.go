// Package imageenc turns uploaded image files into data-URL text that can be
// stored alongside a product record.
package imageenc

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// MaxFileSize caps a single upload.
const MaxFileSize = 5 << 20

var (
	ErrNotImage     = errors.New("imageenc: file is not an image")
	ErrFileTooLarge = errors.New("imageenc: file too large")
)

// Encode reads r fully and returns a data URL. The media type is sniffed from
// the content, never taken from the client.
func Encode(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxFileSize+1))
	if err != nil {
		return "", fmt.Errorf("imageenc: read: %w", err)
	}
	if len(data) > MaxFileSize {
		return "", ErrFileTooLarge
	}

	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", ErrNotImage, mt.String())
	}

	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// EncodeFile opens an uploaded multipart file and encodes it.
func EncodeFile(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("imageenc: open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	url, err := Encode(f)
	if err != nil {
		return "", fmt.Errorf("%s: %w", fh.Filename, err)
	}
	return url, nil
}

// EncodeAll encodes every file in order. Any failure aborts the whole batch
// and no partial result is returned.
func EncodeAll(files []*multipart.FileHeader) ([]string, error) {
	out := make([]string, 0, len(files))
	for _, fh := range files {
		url, err := EncodeFile(fh)
		if err != nil {
			return nil, err
		}
		out = append(out, url)
	}
	return out, nil
}
