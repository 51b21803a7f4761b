package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/echovault/echovault-api/schema"
)

var (
	// ErrIncidentNotFound - no incident with the given id
	ErrIncidentNotFound = errors.New("incident not found")
)

// MediaAttachment is a validated media upload bound for durable
// storage alongside its incident.
type MediaAttachment struct {
	ContentType string
	Data        []byte
}

// IncidentParams are the caller-supplied fields of a new incident.
// The store assigns id and timestamp; neither is accepted from the
// client.
type IncidentParams struct {
	Description  string
	Latitude     float64
	Longitude    float64
	PlaceName    string
	IsAnonymous  bool
	Severity     *schema.Severity
	Authenticity *schema.Authenticity
	Media        *MediaAttachment
}

// IncidentStore - incident record operations. Records are append-only:
// there is no update or delete.
type IncidentStore interface {
	CreateIncident(params IncidentParams) (*schema.Incident, error)
	ListIncidents() ([]schema.Incident, error)
	GetIncident(id string) (*schema.Incident, error)
}

// CreateIncident persists a new immutable incident record. When media
// is attached it is uploaded to blob storage first and only its
// reference lands on the document; a failed record insert must not
// leave that reference reachable, so the fresh blob is deleted best
// effort on failure (an orphaned blob is an acceptable leak, a
// dangling reference on a visible record is not).
func (m *mongoDB) CreateIncident(params IncidentParams) (*schema.Incident, error) {
	incident := schema.Incident{
		ID:           uuid.New().String(),
		Description:  params.Description,
		Location:     schema.NewGeoJSONPoint(params.Latitude, params.Longitude),
		PlaceName:    params.PlaceName,
		Timestamp:    time.Now().Unix(),
		IsAnonymous:  params.IsAnonymous,
		Severity:     params.Severity,
		Authenticity: params.Authenticity,
	}

	var mediaID string
	if params.Media != nil {
		id, err := m.saveMedia(params.Media.ContentType, params.Media.Data)
		if err != nil {
			return nil, fmt.Errorf("save media: %w", err)
		}
		mediaID = id
		incident.MediaURL = MediaURL(id)
		incident.MediaType = params.Media.ContentType
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.IncidentCollection)
	if _, err := c.InsertOne(ctx, incident); err != nil {
		if mediaID != "" {
			if delErr := m.deleteMedia(mediaID); delErr != nil {
				log.WithFields(log.Fields{
					"prefix":   mongoLogPrefix,
					"media_id": mediaID,
					"error":    delErr,
				}).Warn("orphaned media blob left behind")
			}
		}
		return nil, fmt.Errorf("insert incident: %w", err)
	}

	return &incident, nil
}

// ListIncidents returns all incidents, newest first.
func (m *mongoDB) ListIncidents() ([]schema.Incident, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.IncidentCollection)
	cursor, err := c.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"ts": -1}))
	if err != nil {
		return nil, err
	}

	incidents := []schema.Incident{}
	if err := cursor.All(ctx, &incidents); err != nil {
		return nil, err
	}

	return incidents, nil
}

// GetIncident is a point lookup by the store-assigned id.
func (m *mongoDB) GetIncident(id string) (*schema.Incident, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var incident schema.Incident
	c := m.client.Database(m.database).Collection(schema.IncidentCollection)
	if err := c.FindOne(ctx, bson.M{"id": id}).Decode(&incident); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrIncidentNotFound
		}
		return nil, err
	}

	return &incident, nil
}
