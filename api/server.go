package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	cache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/echovault/echovault-api/enrich"
	"github.com/echovault/echovault-api/external/geoinfo"
	"github.com/echovault/echovault-api/logmodule"
	"github.com/echovault/echovault-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

const defaultFeedCacheTTL = 15 * time.Second

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store store.EchoVaultStore

	// Enrichment pipeline for new submissions
	enricher enrich.Enricher

	// Optional reverse geocoder, nil when no map api key is configured
	geoClient geoinfo.GeoInfo

	// Short-lived cache in front of the feed read path
	feedCache *cache.Cache
}

// NewServer new instance of server
func NewServer(
	echoVaultStore store.EchoVaultStore,
	enricher enrich.Enricher,
	geoClient geoinfo.GeoInfo) *Server {
	feedCacheTTL := viper.GetDuration("cache.feed_ttl")
	if feedCacheTTL <= 0 {
		feedCacheTTL = defaultFeedCacheTTL
	}

	return &Server{
		store:     echoVaultStore,
		enricher:  enricher,
		geoClient: geoClient,
		feedCache: cache.New(feedCacheTTL, time.Minute),
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.GET("/information", s.information)

	reportRoute := apiRoute.Group("/reports")
	{
		reportRoute.POST("", s.submitReport)
		reportRoute.GET("", s.listReports)
		reportRoute.GET("/:incidentID", s.getReport)
	}

	apiRoute.GET("/media/:mediaID", s.getMedia)

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			// consumed by the map view of the presentation layer
			"map": map[string]interface{}{
				"apikey": viper.GetString("map.apikey"),
			},
			"system_version": "EchoVault 0.1",
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
