package document

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
)

const (
	DefaultMaxUploadBytes = 50 * 1024 * 1024
	decodeChunkSize       = 8 * 1024 // multiple of 4 so chunks decode independently
	TextPlain             = "text/plain"
)

var (
	ErrUploadTooLarge      = errors.New("file exceeds the upload size limit")
	ErrDecodeCorrupted     = errors.New("stored document is corrupted")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrEmptyFile           = errors.New("file is empty")
)

var (
	CourseExtensions         = []string{"txt", "doc", "docx", "pdf"}
	TestGenerationExtensions = []string{"docx", "pdf", "pptx"}
)

var extensionTypes = map[string]string{
	"txt":  TextPlain,
	"pdf":  "application/pdf",
	"doc":  "application/msword",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"pptx": "application/vnd.openxmlformats-officedocument.presentationml.presentation",
}

// Upload is a file accepted for storage.
type Upload struct {
	FileName string
	MIMEType string
	// Text is set for text/plain files, FileData for everything else.
	Text     string
	FileData string
}

// Pipeline encodes uploads into data URIs and decodes them back.
type Pipeline struct {
	maxUploadBytes int64
}

func NewPipeline(maxUploadBytes int64) *Pipeline {
	if maxUploadBytes <= 0 {
		maxUploadBytes = DefaultMaxUploadBytes
	}
	return &Pipeline{maxUploadBytes: maxUploadBytes}
}

func (p *Pipeline) MaxUploadBytes() int64 {
	return p.maxUploadBytes
}

// CheckSize rejects an upload before any encoding work happens.
func (p *Pipeline) CheckSize(size int64) error {
	if size > p.maxUploadBytes {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrUploadTooLarge, size, p.maxUploadBytes)
	}
	return nil
}

// Encode turns raw file bytes into an Upload. allowed lists the accepted
// extensions without the dot.
func (p *Pipeline) Encode(fileName string, data []byte, allowed []string) (*Upload, error) {
	if err := p.CheckSize(int64(len(data))); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileName)), ".")
	if !contains(allowed, ext) {
		return nil, fmt.Errorf("%w: .%s (accepted: %s)", ErrUnsupportedFileType, ext, strings.Join(allowed, ", "))
	}

	mimeType := extensionTypes[ext]
	if mimeType == "" {
		mimeType = mime.TypeByExtension("." + ext)
	}

	upload := &Upload{FileName: fileName, MIMEType: mimeType}
	if mimeType == TextPlain {
		upload.Text = string(data)
		return upload, nil
	}
	upload.FileData = DataURI{MIMEType: mimeType, Payload: base64.StdEncoding.EncodeToString(data)}.String()
	return upload, nil
}

// Document is a reconstructed attachment ready to be served.
type Document struct {
	MIMEType string
	FileName string
	Data     []byte
	// Partial marks output decoded from a truncated attachment.
	Partial bool
}

// Decode rebuilds the binary content of a stored data URI in fixed-size
// chunks. With partial set, the source is known to be truncated: decoding
// stops at the first undecodable chunk and returns what was recovered
// instead of failing.
func (p *Pipeline) Decode(fileData, fileName string, partial bool) (*Document, error) {
	uri, ok := ParseDataURI(fileData)
	if !ok {
		return nil, fmt.Errorf("%w: not a base64 data URI", ErrDecodeCorrupted)
	}

	var buf bytes.Buffer
	buf.Grow(base64.StdEncoding.DecodedLen(len(uri.Payload)))
	chunk := make([]byte, base64.StdEncoding.DecodedLen(decodeChunkSize))

	payload := uri.Payload
	for len(payload) > 0 {
		n := decodeChunkSize
		if n > len(payload) {
			n = len(payload)
		}
		piece := payload[:n]
		payload = payload[n:]

		if partial && len(piece)%4 != 0 {
			piece = piece[:len(piece)-len(piece)%4]
		}
		written, err := base64.StdEncoding.Decode(chunk, []byte(piece))
		if err != nil {
			if partial {
				buf.Write(chunk[:written])
				break
			}
			return nil, fmt.Errorf("%w: %v", ErrDecodeCorrupted, err)
		}
		buf.Write(chunk[:written])
	}

	return &Document{
		MIMEType: uri.MIMEType,
		FileName: DownloadName(fileName, uri.MIMEType),
		Data:     buf.Bytes(),
		Partial:  partial,
	}, nil
}

// DownloadName keeps a stored name and otherwise derives one from the MIME type.
func DownloadName(stored, mimeType string) string {
	if strings.TrimSpace(stored) != "" {
		return stored
	}
	return "document." + DefaultExtension(mimeType)
}

func DefaultExtension(mimeType string) string {
	switch {
	case strings.Contains(mimeType, "pdf"):
		return "pdf"
	case strings.Contains(mimeType, "openxmlformats-officedocument.wordprocessingml"):
		return "docx"
	case strings.Contains(mimeType, "msword"):
		return "doc"
	default:
		return "txt"
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
