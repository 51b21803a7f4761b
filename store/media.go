package store

import (
	"bytes"
	"errors"
	"io"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mediaBucketName = "media"

var (
	// ErrMediaNotFound - no media blob with the given id
	ErrMediaNotFound = errors.New("media not found")
)

// MediaURL is the reference recorded on an incident document in place
// of the raw payload.
func MediaURL(id string) string {
	return "/api/media/" + id
}

// MediaStore - durable blob storage for report attachments
type MediaStore interface {
	OpenMedia(id string) (io.ReadCloser, int64, string, error)
}

func (m *mongoDB) mediaBucket() (*gridfs.Bucket, error) {
	return gridfs.NewBucket(
		m.client.Database(m.database),
		options.GridFSBucket().SetName(mediaBucketName),
	)
}

// saveMedia uploads a blob under a fresh id and returns that id.
func (m *mongoDB) saveMedia(contentType string, data []byte) (string, error) {
	bucket, err := m.mediaBucket()
	if err != nil {
		return "", err
	}

	id := uuid.New().String()
	err = bucket.UploadFromStreamWithID(id, id, bytes.NewReader(data),
		options.GridFSUpload().SetMetadata(bson.M{"contentType": contentType}))
	if err != nil {
		return "", err
	}

	return id, nil
}

func (m *mongoDB) deleteMedia(id string) error {
	bucket, err := m.mediaBucket()
	if err != nil {
		return err
	}
	return bucket.Delete(id)
}

// OpenMedia streams a stored blob back out along with its length and
// content type.
func (m *mongoDB) OpenMedia(id string) (io.ReadCloser, int64, string, error) {
	bucket, err := m.mediaBucket()
	if err != nil {
		return nil, 0, "", err
	}

	stream, err := bucket.OpenDownloadStream(id)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, 0, "", ErrMediaNotFound
		}
		return nil, 0, "", err
	}

	file := stream.GetFile()
	contentType := ""
	if file.Metadata != nil {
		if value, err := file.Metadata.LookupErr("contentType"); err == nil {
			contentType, _ = value.StringValueOK()
		}
	}

	return stream, file.Length, contentType, nil
}
