package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/echovault/echovault-api/store"
)

// getMedia streams a stored attachment back out. Incident documents
// only carry references of the form /api/media/<id>; this is the
// endpoint those references resolve against.
func (s *Server) getMedia(c *gin.Context) {
	reader, length, contentType, err := s.store.OpenMedia(c.Param("mediaID"))
	if err != nil {
		if errors.Is(err, store.ErrMediaNotFound) {
			abortWithEncoding(c, http.StatusNotFound, errorMediaNotFound)
			return
		}
		shouldInterupt(err, c)
		return
	}
	defer reader.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.DataFromReader(http.StatusOK, length, contentType, reader, nil)
}
