// Package upload saves multipart uploads to local disk under collision
// resistant generated names. Files are buffered fully; there is no streaming
// or resumability.
package upload

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	MaxImageSize    = 5 * 1024 * 1024
	MaxDocumentSize = 10 * 1024 * 1024
	MaxUserFileSize = 10 * 1024 * 1024

	UserFilesSubdir = "user-files"
)

var (
	ErrNoFile       = errors.New("no file uploaded")
	ErrTooLarge     = errors.New("file exceeds the size limit")
	ErrBadImageType = errors.New("only image files are allowed")
	ErrBadDocType   = errors.New("document type not supported, upload PDF, Word, Excel, PowerPoint or text files only")
	ErrBadFileType  = errors.New("file type not allowed for security reasons")
)

var documentMimes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         true,
	"application/vnd.ms-powerpoint":                                             true,
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
	"text/plain": true,
	"text/csv":   true,
}

var userFileMimePrefixes = []string{
	"image/", "text/", "application/pdf", "application/json",
	"application/vnd.openxmlformats-officedocument",
	"application/vnd.ms-", "video/", "audio/",
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// FileInfo describes a stored upload as reported to the client.
type FileInfo struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalname"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimetype"`
	Path         string `json:"path"`
	UploadDate   string `json:"uploadDate"`
}

// Store writes uploads under a single root directory, served back at
// /uploads.
type Store struct {
	Dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dir, UserFilesSubdir), 0o755); err != nil {
		return nil, err
	}
	return &Store{Dir: dir}, nil
}

// SaveImage stores an image upload as program-<timestamp>-<random>.<ext>.
func (s *Store) SaveImage(file *multipart.FileHeader) (*FileInfo, error) {
	if file == nil {
		return nil, ErrNoFile
	}
	if file.Size > MaxImageSize {
		return nil, ErrTooLarge
	}
	if !strings.HasPrefix(contentType(file), "image/") {
		return nil, ErrBadImageType
	}
	name := fmt.Sprintf("program-%s%s", uniqueSuffix(), filepath.Ext(file.Filename))
	return s.write(file, name, "")
}

// SaveDocument stores a document upload as doc-<timestamp>-<random>-<name>.
func (s *Store) SaveDocument(file *multipart.FileHeader) (*FileInfo, error) {
	if file == nil {
		return nil, ErrNoFile
	}
	if file.Size > MaxDocumentSize {
		return nil, ErrTooLarge
	}
	if !documentMimes[contentType(file)] {
		return nil, ErrBadDocType
	}
	name := fmt.Sprintf("doc-%s-%s", uniqueSuffix(), sanitizeName(file.Filename))
	return s.write(file, name, "")
}

// SaveUserFile stores an arbitrary user upload under uploads/user-files.
func (s *Store) SaveUserFile(file *multipart.FileHeader) (*FileInfo, error) {
	if file == nil {
		return nil, ErrNoFile
	}
	if file.Size > MaxUserFileSize {
		return nil, ErrTooLarge
	}
	ct := contentType(file)
	allowed := false
	for _, prefix := range userFileMimePrefixes {
		if strings.HasPrefix(ct, prefix) {
			allowed = true
			break
		}
	}
	if !allowed {
		return nil, ErrBadFileType
	}
	name := fmt.Sprintf("%s-%s", uniqueSuffix(), sanitizeName(file.Filename))
	return s.write(file, name, UserFilesSubdir)
}

func (s *Store) write(file *multipart.FileHeader, name, subdir string) (*FileInfo, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, subdir, name))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, err
	}

	publicPath := "/uploads/" + name
	if subdir != "" {
		publicPath = "/uploads/" + subdir + "/" + name
	}
	return &FileInfo{
		Filename:     name,
		OriginalName: file.Filename,
		Size:         file.Size,
		MimeType:     contentType(file),
		Path:         publicPath,
		UploadDate:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func contentType(file *multipart.FileHeader) string {
	return file.Header.Get("Content-Type")
}

func sanitizeName(name string) string {
	return unsafeNameChars.ReplaceAllString(filepath.Base(name), "_")
}

func uniqueSuffix() string {
	return fmt.Sprintf("%d-%d", time.Now().UnixMilli(), rand.Intn(1_000_000_000))
}
