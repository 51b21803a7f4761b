package api

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeader(filename, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{
		Filename: filename,
		Header:   header,
		Size:     size,
	}
}

func TestValidateSubmission(t *testing.T) {
	submission, fieldErrors := validateSubmission(
		"Fire at Main St warehouse, heavy smoke",
		"42.36", "-71.06", "on",
		fileHeader("smoke.png", "image/png", 2<<20),
	)
	assert.Nil(t, fieldErrors)
	assert.Equal(t, 42.36, submission.Latitude)
	assert.Equal(t, -71.06, submission.Longitude)
	assert.True(t, submission.IsAnonymous)
	assert.Equal(t, "image/png", submission.MediaType)
}

func TestValidateSubmissionNoMedia(t *testing.T) {
	submission, fieldErrors := validateSubmission(
		"Minor traffic collision on Mass Ave bridge",
		"42.3581", "-71.0822", "",
		nil,
	)
	assert.Nil(t, fieldErrors)
	assert.Nil(t, submission.Media)
	assert.False(t, submission.IsAnonymous)
}

func TestValidateSubmissionShortDescription(t *testing.T) {
	submission, fieldErrors := validateSubmission("too short", "42.36", "-71.06", "", nil)
	assert.Nil(t, submission)
	assert.Contains(t, fieldErrors, "description")
}

func TestValidateSubmissionBadCoordinates(t *testing.T) {
	for _, pair := range [][2]string{
		{"", "-71.06"},
		{"42.36", ""},
		{"north", "-71.06"},
		{"NaN", "-71.06"},
		{"42.36", "+Inf"},
	} {
		submission, fieldErrors := validateSubmission(
			"Fire at Main St warehouse, heavy smoke",
			pair[0], pair[1], "", nil,
		)
		assert.Nil(t, submission, "lat=%q lng=%q", pair[0], pair[1])
		assert.Contains(t, fieldErrors, "location")
	}
}

func TestValidateSubmissionOversizedMedia(t *testing.T) {
	submission, fieldErrors := validateSubmission(
		"Fire at Main St warehouse, heavy smoke",
		"42.36", "-71.06", "",
		fileHeader("smoke.png", "image/png", 6<<20),
	)
	assert.Nil(t, submission)
	assert.Contains(t, fieldErrors, "media")
}

func TestValidateSubmissionWrongMediaType(t *testing.T) {
	submission, fieldErrors := validateSubmission(
		"Fire at Main St warehouse, heavy smoke",
		"42.36", "-71.06", "",
		fileHeader("report.pdf", "application/pdf", 1024),
	)
	assert.Nil(t, submission)
	assert.Contains(t, fieldErrors, "media")
}

func TestValidateSubmissionMediaTypeFromExtension(t *testing.T) {
	submission, fieldErrors := validateSubmission(
		"Fire at Main St warehouse, heavy smoke",
		"42.36", "-71.06", "",
		fileHeader("smoke.png", "application/octet-stream", 1024),
	)
	assert.Nil(t, fieldErrors)
	assert.Equal(t, "image/png", submission.MediaType)
}

func TestValidateSubmissionCollectsAllErrors(t *testing.T) {
	submission, fieldErrors := validateSubmission(
		"too short", "north", "east", "",
		fileHeader("report.pdf", "application/pdf", 6<<20),
	)
	assert.Nil(t, submission)
	assert.Contains(t, fieldErrors, "description")
	assert.Contains(t, fieldErrors, "location")
	assert.Contains(t, fieldErrors, "media")
	assert.Len(t, fieldErrors["media"], 2, "size and type errors are both reported")
}
