package api

import (
	"math"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	minDescriptionLength = 10
	maxMediaSize         = 5 << 20 // 5 MiB

	// formErrorKey collects failures not tied to a single field
	formErrorKey = "_form"
)

// incidentSubmission is a fully validated report submission.
type incidentSubmission struct {
	Description string
	Latitude    float64
	Longitude   float64
	IsAnonymous bool

	// Media is nil when no attachment was submitted. MediaType is the
	// resolved MIME type of the attachment.
	Media     *multipart.FileHeader
	MediaType string
}

// validateSubmission checks the raw form fields of a report and
// returns either a typed submission or every field error collected,
// keyed by field name. There is no partial success.
func validateSubmission(description, latitude, longitude, isAnonymous string, media *multipart.FileHeader) (*incidentSubmission, map[string][]string) {
	fieldErrors := map[string][]string{}

	if utf8.RuneCountInString(description) < minDescriptionLength {
		fieldErrors["description"] = append(fieldErrors["description"], "Description must be at least 10 characters long.")
	}

	lat, latErr := parseCoordinate(latitude)
	lng, lngErr := parseCoordinate(longitude)
	if latErr != nil || lngErr != nil {
		fieldErrors["location"] = append(fieldErrors["location"], "Latitude and longitude must be valid numbers.")
	}

	mediaType := ""
	if media != nil {
		if media.Size > maxMediaSize {
			fieldErrors["media"] = append(fieldErrors["media"], "File size should be less than 5MB.")
		}

		mediaType = mediaContentType(media)
		if !strings.HasPrefix(mediaType, "image/") && !strings.HasPrefix(mediaType, "audio/") {
			fieldErrors["media"] = append(fieldErrors["media"], "Only image and audio files are accepted.")
		}
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}

	return &incidentSubmission{
		Description: description,
		Latitude:    lat,
		Longitude:   lng,
		IsAnonymous: isAnonymous == "on",
		Media:       media,
		MediaType:   mediaType,
	}, nil
}

func parseCoordinate(value string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrRange
	}
	return f, nil
}

// mediaContentType resolves the attachment MIME type from the part
// header, falling back to the filename extension when the client did
// not declare one.
func mediaContentType(media *multipart.FileHeader) string {
	contentType := media.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		if byExt := mime.TypeByExtension(filepath.Ext(media.Filename)); byExt != "" {
			contentType = byExt
		}
	}

	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		return mediaType
	}
	return contentType
}
