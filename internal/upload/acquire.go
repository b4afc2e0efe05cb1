package upload

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
)

type (
	// FileHandle references the raw bytes of an acquired file, either
	// freshly downloaded or recovered from an existing file reference.
	FileHandle struct {
		Path string
		Data []byte
	}

	// FileAttributes are the derived descriptors the pipeline writes back
	// on to the upload record after processing.
	FileAttributes struct {
		MD5         string
		FileExt     string
		ImageWidth  int
		ImageHeight int
		FileSize    int64
	}

	// AcquisitionError classifies a transport or IO failure while
	// retrieving the underlying file.
	AcquisitionError struct {
		reason string
	}

	// ProcessingError classifies a failure deriving attributes from
	// already-acquired bytes (unreadable image, malformed archive).
	ProcessingError struct {
		reason string
	}

	fileAcquirer struct {
		downloadDir string
		http        *http.Client
	}
)

func (err *AcquisitionError) Error() string { return err.reason }
func (err *ProcessingError) Error() string  { return err.reason }

func NewFileAcquirer(downloadDir string, timeout time.Duration) *fileAcquirer {
	if timeout == 0 {
		timeout = time.Second * 30
	}

	return &fileAcquirer{downloadDir: downloadDir, http: &http.Client{Timeout: timeout}}
}

// Fetch retrieves the file bytes for the upload. An existing file
// reference on the record short-circuits the download; otherwise the
// media at imageURL is downloaded with the records referer as page
// context. All transport failures surface as classified errors, never
// as hangs (the HTTP client bounds every request).
func (acquirer *fileAcquirer) Fetch(ctx context.Context, upload *Upload, imageURL string) (*FileHandle, error) {
	if upload.FilePath != "" {
		data, err := os.ReadFile(upload.FilePath)
		if err != nil {
			return nil, &AcquisitionError{reason: fmt.Sprintf("failed to read uploaded file %s: %s", upload.FilePath, err.Error())}
		}

		return &FileHandle{Path: upload.FilePath, Data: data}, nil
	}

	if imageURL == "" {
		return nil, &AcquisitionError{reason: "no file reference and no fetchable media URL for upload"}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, &AcquisitionError{reason: fmt.Sprintf("failed to construct download request for %s: %s", imageURL, err.Error())}
	}
	if upload.RefererURL != "" {
		req.Header.Set("Referer", upload.RefererURL)
	}

	resp, err := acquirer.http.Do(req)
	if err != nil {
		return nil, &AcquisitionError{reason: fmt.Sprintf("failed to download %s: %s", imageURL, err.Error())}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &AcquisitionError{reason: fmt.Sprintf("failed to download %s: HTTP %d", imageURL, resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &AcquisitionError{reason: fmt.Sprintf("failed to read download body for %s: %s", imageURL, err.Error())}
	}

	path := filepath.Join(acquirer.downloadDir, upload.ID.String())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, &AcquisitionError{reason: fmt.Sprintf("failed to persist download to %s: %s", path, err.Error())}
	}

	return &FileHandle{Path: path, Data: data}, nil
}

// Process computes the derived attributes of the acquired bytes:
// checksum, size, extension and pixel dimensions. Ugoira archives are
// recognised via the upload's context blob; their dimensions come from
// the first frame inside the zip.
func (acquirer *fileAcquirer) Process(_ context.Context, upload *Upload, handle *FileHandle) (*FileAttributes, error) {
	sum := md5.Sum(handle.Data)
	attributes := &FileAttributes{
		MD5:      hex.EncodeToString(sum[:]),
		FileSize: int64(len(handle.Data)),
	}

	if upload.Context != nil && upload.Context.Ugoira != nil {
		width, height, err := firstUgoiraFrameBounds(handle.Data)
		if err != nil {
			return nil, err
		}

		attributes.FileExt = "zip"
		attributes.ImageWidth = width
		attributes.ImageHeight = height
		return attributes, nil
	}

	format, err := detectImageFormat(handle.Data)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(handle.Data))
	if err != nil {
		return nil, &ProcessingError{reason: fmt.Sprintf("failed to decode image: %s", err.Error())}
	}

	bounds := img.Bounds()
	attributes.FileExt = format
	attributes.ImageWidth = bounds.Dx()
	attributes.ImageHeight = bounds.Dy()

	return attributes, nil
}

// firstUgoiraFrameBounds opens the ugoira zip and decodes its first
// frame, which is what a static representation of the animation shows.
func firstUgoiraFrameBounds(data []byte) (int, int, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, 0, &ProcessingError{reason: fmt.Sprintf("failed to open ugoira archive: %s", err.Error())}
	}

	if len(reader.File) == 0 {
		return 0, 0, &ProcessingError{reason: "ugoira archive contains no frames"}
	}

	frame, err := reader.File[0].Open()
	if err != nil {
		return 0, 0, &ProcessingError{reason: fmt.Sprintf("failed to open first ugoira frame: %s", err.Error())}
	}
	defer frame.Close()

	img, err := imaging.Decode(frame)
	if err != nil {
		return 0, 0, &ProcessingError{reason: fmt.Sprintf("failed to decode first ugoira frame: %s", err.Error())}
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}

func detectImageFormat(data []byte) (string, error) {
	contentType := http.DetectContentType(data)
	switch contentType {
	case "image/jpeg":
		return "jpg", nil
	case "image/png":
		return "png", nil
	case "image/gif":
		return "gif", nil
	}

	return "", &ProcessingError{reason: fmt.Sprintf("unsupported file type %s", contentType)}
}
