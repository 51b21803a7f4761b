package store

import (
	"context"
	"io/ioutil"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/echovault/echovault-api/schema"
)

type IncidentTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewIncidentTestSuite(connURI, dbName string) *IncidentTestSuite {
	return &IncidentTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *IncidentTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *IncidentTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *IncidentTestSuite) TestCreateIncidentAssignsIDAndTimestamp() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	before := time.Now().Unix()
	incident, err := store.CreateIncident(IncidentParams{
		Description: "Fire at Main St warehouse, heavy smoke",
		Latitude:    42.36,
		Longitude:   -71.06,
		IsAnonymous: false,
		Severity:    &schema.Severity{Score: 8, Description: "high"},
	})
	s.NoError(err)
	s.NotEmpty(incident.ID)
	s.GreaterOrEqual(incident.Timestamp, before)
	s.Nil(incident.Authenticity)
	s.Empty(incident.MediaURL)
	s.Equal(42.36, incident.Location.Lat())
	s.Equal(-71.06, incident.Location.Lng())
}

func (s *IncidentTestSuite) TestCreateIncidentWithMediaStoresReference() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	payload := []byte("not-really-a-png")
	incident, err := store.CreateIncident(IncidentParams{
		Description:  "Fire at Main St warehouse, heavy smoke",
		Latitude:     42.36,
		Longitude:    -71.06,
		Severity:     &schema.Severity{Score: 8, Description: "high"},
		Authenticity: &schema.Authenticity{IsAuthentic: true, ConfidenceScore: 0.9, Explanation: "consistent"},
		Media:        &MediaAttachment{ContentType: "image/png", Data: payload},
	})
	s.NoError(err)
	s.NotEmpty(incident.MediaURL)
	s.NotContains(incident.MediaURL, string(payload))
	s.Equal("image/png", incident.MediaType)

	// the stored document carries the reference, not the payload
	var raw bson.M
	err = s.testDatabase.Collection(schema.IncidentCollection).
		FindOne(context.Background(), bson.M{"id": incident.ID}).Decode(&raw)
	s.NoError(err)
	s.Equal(incident.MediaURL, raw["media_url"])

	// and the blob streams back intact
	mediaID := incident.MediaURL[len(MediaURL("")):]
	reader, length, contentType, err := store.OpenMedia(mediaID)
	s.NoError(err)
	defer reader.Close()

	s.Equal(int64(len(payload)), length)
	s.Equal("image/png", contentType)
	data, err := ioutil.ReadAll(reader)
	s.NoError(err)
	s.Equal(payload, data)
}

func (s *IncidentTestSuite) TestListIncidentsNewestFirst() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	first, err := store.CreateIncident(IncidentParams{
		Description: "Gas leak reported on Elm Street",
		Latitude:    42.37,
		Longitude:   -71.1,
		Severity:    &schema.Severity{Score: 6, Description: "moderate"},
	})
	s.NoError(err)

	// timestamps are unix seconds; make the ordering unambiguous
	time.Sleep(1100 * time.Millisecond)

	second, err := store.CreateIncident(IncidentParams{
		Description: "Flooding in the underpass at 5th Ave",
		Latitude:    42.38,
		Longitude:   -71.11,
		Severity:    &schema.Severity{Score: 4, Description: "low"},
	})
	s.NoError(err)

	incidents, err := store.ListIncidents()
	s.NoError(err)
	s.GreaterOrEqual(len(incidents), 2)

	for i := 1; i < len(incidents); i++ {
		s.GreaterOrEqual(incidents[i-1].Timestamp, incidents[i].Timestamp)
	}

	indexOf := func(id string) int {
		for i, incident := range incidents {
			if incident.ID == id {
				return i
			}
		}
		return -1
	}
	s.Less(indexOf(second.ID), indexOf(first.ID), "newer record must come first")
}

func (s *IncidentTestSuite) TestGetIncidentRoundTrip() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	created, err := store.CreateIncident(IncidentParams{
		Description: "Power lines down across Route 9",
		Latitude:    42.33,
		Longitude:   -71.2,
		IsAnonymous: true,
		Severity:    &schema.Severity{Score: 7, Description: "high"},
	})
	s.NoError(err)

	found, err := store.GetIncident(created.ID)
	s.NoError(err)
	s.Equal(created, found)

	// immutability: a second read observes the same record
	again, err := store.GetIncident(created.ID)
	s.NoError(err)
	s.Equal(found, again)
}

func (s *IncidentTestSuite) TestGetIncidentNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.GetIncident("no-such-id")
	s.ErrorIs(err, ErrIncidentNotFound)
}

func (s *IncidentTestSuite) TestOpenMediaNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, _, _, err := store.OpenMedia("no-such-id")
	s.ErrorIs(err, ErrMediaNotFound)
}

func TestIncidentTestSuite(t *testing.T) {
	suite.Run(t, NewIncidentTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
