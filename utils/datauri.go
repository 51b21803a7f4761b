package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeDataURI converts a binary attachment into a self-describing
// embeddable string of the form "data:<mime>;base64,<payload>".
func EncodeDataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// DecodeDataURI is the inverse of EncodeDataURI. It returns the MIME
// type and the decoded payload.
func DecodeDataURI(uri string) (string, []byte, error) {
	if !strings.HasPrefix(uri, "data:") {
		return "", nil, fmt.Errorf("not a data uri")
	}

	meta, payload, found := strings.Cut(uri[len("data:"):], ",")
	if !found {
		return "", nil, fmt.Errorf("malformed data uri: missing payload")
	}

	mimeType, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return "", nil, fmt.Errorf("malformed data uri: not base64 encoded")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("malformed data uri: %w", err)
	}

	return mimeType, data, nil
}
