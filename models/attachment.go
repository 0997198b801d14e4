package models

import (
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"
)

// Attachment is the decrypted content of a paste.
type Attachment struct {
	// Content is a data URI, e.g. "data:application/x-bittorrent;base64,...".
	Content string `json:"attachment"`
	// Name is the file name suggested by the uploader.
	Name string `json:"attachment_name"`
}

// ParseAttachment decodes plaintext as a JSON record with two required
// string fields, matched by exact key. The data URI itself is not validated
// here.
func ParseAttachment(plaintext []byte) (Attachment, error) {
	obj, err := parseObject(plaintext)
	if err != nil {
		return Attachment{}, fmt.Errorf("%w: %v", ErrAttachmentParse, err)
	}

	var att Attachment
	ok, err := obj.decode("attachment", &att.Content)
	if err != nil {
		return Attachment{}, fmt.Errorf("%w: attachment: %v", ErrAttachmentParse, err)
	}
	if !ok {
		return Attachment{}, fmt.Errorf("%w: missing attachment", ErrAttachmentParse)
	}
	ok, err = obj.decode("attachment_name", &att.Name)
	if err != nil {
		return Attachment{}, fmt.Errorf("%w: attachment_name: %v", ErrAttachmentParse, err)
	}
	if !ok {
		return Attachment{}, fmt.Errorf("%w: missing attachment_name", ErrAttachmentParse)
	}

	return att, nil
}

// Decode splits the data URI into its media type and decoded payload.
// Only base64 data URIs are supported.
func (a Attachment) Decode() (mediaType string, data []byte, err error) {
	rest, ok := strings.CutPrefix(a.Content, "data:")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing data: scheme", ErrInvalidDataURI)
	}

	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("%w: missing ',' separator", ErrInvalidDataURI)
	}

	mediaType, ok = strings.CutSuffix(header, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("%w: only base64 payloads are supported", ErrInvalidDataURI)
	}

	data, err = base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}

	return mediaType, data, nil
}

// FileName returns the suggested name reduced to its last path element so
// that it cannot escape the output directory.
func (a Attachment) FileName() (string, error) {
	name := filepath.Base(strings.ReplaceAll(a.Name, `\`, "/"))
	switch name {
	case "", ".", "..", "/":
		return "", fmt.Errorf("%w: %q", ErrInvalidAttachmentName, a.Name)
	}
	return name, nil
}

// NewDataURI builds the content string of an [Attachment].
func NewDataURI(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
