// Package api exposes the knowledge-base services over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masoai/kbengine/internal/stats"
	"github.com/masoai/kbengine/model"
	"github.com/masoai/kbengine/services"
)

// maxRequestBodySize bounds incoming request bodies; corpus uploads can be
// large but are still capped.
const maxRequestBodySize = 16 << 20

// API holds dependencies for API handlers, primarily the knowledge service.
type API struct {
	kb    services.KnowledgeService
	stats *stats.Service
}

// NewAPI creates a new API handler structure.
func NewAPI(kb services.KnowledgeService) *API {
	return &API{kb: kb, stats: stats.NewService()}
}

// SetupRoutes defines all the API routes for the knowledge-base service.
func SetupRoutes(router *gin.Engine, kb services.KnowledgeService) {
	apiHandler := NewAPI(kb)

	router.Use(RequestSizeLimitMiddleware(maxRequestBodySize))
	router.Use(CORSMiddleware())

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/stats", apiHandler.StatsHandler)

	router.POST("/search", apiHandler.SearchHandler)
	router.POST("/signals", apiHandler.SignalsHandler)
	router.POST("/context", apiHandler.ContextHandler)

	diffRoutes := router.Group("/diff")
	{
		diffRoutes.POST("", apiHandler.GenerateDiffHandler) // Compare held corpus against a scraped snapshot
		diffRoutes.POST("/apply", apiHandler.ApplyDiffHandler)
	}

	corpusRoutes := router.Group("/corpus")
	{
		corpusRoutes.GET("", apiHandler.GetCorpusHandler)
		corpusRoutes.PUT("", apiHandler.PutCorpusHandler)
	}
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// StatsHandler reports search analytics and corpus collection counts. The
// counts stay zero while no corpus is loaded.
func (api *API) StatsHandler(c *gin.Context) {
	corpus, _ := api.kb.Corpus()
	c.JSON(http.StatusOK, api.stats.Dashboard(corpus))
}

// GetCorpusHandler returns the held corpus snapshot.
func (api *API) GetCorpusHandler(c *gin.Context) {
	corpus, err := api.kb.Corpus()
	if err != nil {
		SendCorpusNotLoadedError(c)
		return
	}
	c.JSON(http.StatusOK, corpus)
}

// PutCorpusHandler installs a new corpus snapshot.
// Request Body: model.Corpus
func (api *API) PutCorpusHandler(c *gin.Context) {
	var corpus model.Corpus
	if err := c.ShouldBindJSON(&corpus); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	api.kb.SetCorpus(&corpus)
	c.JSON(http.StatusOK, gin.H{
		"message":      "Corpus installed",
		"faqs":         len(corpus.FAQs),
		"sections":     len(corpus.ContentSections),
		"arrangements": len(corpus.Arrangements),
		"documents":    len(corpus.PDFDocuments),
	})
}
