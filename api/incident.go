package api

import (
	"errors"
	"io/ioutil"
	"net/http"

	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"

	"github.com/echovault/echovault-api/store"
	"github.com/echovault/echovault-api/utils"
)

const feedCacheKey = "incident-feed"

// submitReport drives a submission through the whole pipeline:
// validate, encode media, enrich, persist. Any failure is terminal for
// the attempt; nothing is written unless every stage succeeded.
func (s *Server) submitReport(c *gin.Context) {
	media, err := c.FormFile("media")
	if err != nil || (media != nil && media.Size == 0) {
		media = nil
	}

	submission, fieldErrors := validateSubmission(
		c.PostForm("description"),
		c.PostForm("latitude"),
		c.PostForm("longitude"),
		c.PostForm("isAnonymous"),
		media,
	)
	if fieldErrors != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorJSONWithFields(1010, fieldErrors))
		return
	}

	var attachment *store.MediaAttachment
	mediaDataURI := ""
	if submission.Media != nil {
		file, err := submission.Media.Open()
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, formErrorJSON(1402), err)
			return
		}

		data, err := ioutil.ReadAll(file)
		file.Close()
		if err != nil {
			abortWithEncoding(c, http.StatusInternalServerError, formErrorJSON(1402), err)
			return
		}

		mediaDataURI = utils.EncodeDataURI(submission.MediaType, data)
		attachment = &store.MediaAttachment{
			ContentType: submission.MediaType,
			Data:        data,
		}
	}

	placeName := ""
	if s.geoClient != nil {
		name, err := s.geoClient.PlaceName(submission.Latitude, submission.Longitude)
		if err != nil {
			// best effort only, the record is stored without a place name
			log.WithError(err).Warn("reverse geocoding failed")
		} else {
			placeName = name
		}
	}

	result, err := s.enricher.Enrich(c.Request.Context(), submission.Description, mediaDataURI)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, formErrorJSON(1400), err)
		return
	}

	incident, err := s.store.CreateIncident(store.IncidentParams{
		Description:  submission.Description,
		Latitude:     submission.Latitude,
		Longitude:    submission.Longitude,
		PlaceName:    placeName,
		IsAnonymous:  submission.IsAnonymous,
		Severity:     result.Severity,
		Authenticity: result.Authenticity,
		Media:        attachment,
	})
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, formErrorJSON(1403), err)
		return
	}

	s.feedCache.Delete(feedCacheKey)

	c.JSON(http.StatusCreated, gin.H{"result": incident})
}

func (s *Server) listReports(c *gin.Context) {
	if cached, ok := s.feedCache.Get(feedCacheKey); ok {
		c.JSON(http.StatusOK, gin.H{"incidents": cached})
		return
	}

	incidents, err := s.store.ListIncidents()
	if shouldInterupt(err, c) {
		return
	}

	s.feedCache.Set(feedCacheKey, incidents, cache.DefaultExpiration)

	c.JSON(http.StatusOK, gin.H{"incidents": incidents})
}

func (s *Server) getReport(c *gin.Context) {
	incident, err := s.store.GetIncident(c.Param("incidentID"))
	if err != nil {
		if errors.Is(err, store.ErrIncidentNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorIncidentNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"incident": incident})
}
