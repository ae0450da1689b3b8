package document

import (
	"regexp"
	"strings"
)

var dataURIPattern = regexp.MustCompile(`^data:([A-Za-z0-9!#$&^_.+-]+/[A-Za-z0-9!#$&^_.+-]+);base64,([A-Za-z0-9+/]*={0,2})$`)

// DataURI is a parsed data:<mime>;base64,<payload> string.
type DataURI struct {
	MIMEType string
	Payload  string
}

// ParseDataURI reports false when s does not match the data URI pattern.
func ParseDataURI(s string) (DataURI, bool) {
	m := dataURIPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return DataURI{}, false
	}
	return DataURI{MIMEType: m[1], Payload: m[2]}, true
}

func (d DataURI) String() string {
	return "data:" + d.MIMEType + ";base64," + d.Payload
}

// Limit outcome of an attachment checked against a storage budget.
type Limit int

const (
	LimitKept Limit = iota
	LimitTruncated
	LimitDropped
)

// LimitAttachment applies the storage budget to a data URI attachment.
// A payload longer than budget characters is cut to its first budget
// characters and re-wrapped with the original MIME prefix. A value that is
// not a data URI is dropped.
func LimitAttachment(fileData string, budget int) (string, Limit) {
	uri, ok := ParseDataURI(fileData)
	if !ok {
		return "", LimitDropped
	}
	if len(uri.Payload) <= budget {
		return fileData, LimitKept
	}
	uri.Payload = uri.Payload[:budget]
	return uri.String(), LimitTruncated
}
