package validators

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/viper"
)

var (
	ErrNoImage          = errors.New("no image provided")
	ErrImageTooLarge    = errors.New("image too large")
	ErrNotAnImage       = errors.New("uploaded file is not a valid image")
	ErrImageNameTooLong = errors.New("file name is too long")
)

const maxImageNameSize = 255

// ImageValidator checks that the upload really is an image by sniffing
// the bytes. The declared Content-Type header is trivial to spoof so it
// isn't trusted on its own. Returns the detected MIME and an open handle
// seeked back to the start.
func ImageValidator(fh *multipart.FileHeader) (int, *mimetype.MIME, multipart.File, error) {
	if fh == nil {
		return http.StatusBadRequest, nil, nil, ErrNoImage
	}

	if len(fh.Filename) > maxImageNameSize {
		return http.StatusBadRequest, nil, nil, ErrImageNameTooLong
	}

	maxSize := viper.GetInt64("upload.max_size")
	if maxSize > 0 && fh.Size > maxSize {
		return http.StatusRequestEntityTooLarge, nil, nil, ErrImageTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return http.StatusInternalServerError, nil, nil, err
	}

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, nil, err
	}

	if !strings.HasPrefix(mime.String(), "image/") {
		f.Close()
		return http.StatusBadRequest, nil, nil, ErrNotAnImage
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return http.StatusInternalServerError, nil, nil, err
	}

	return 0, mime, f, nil
}
