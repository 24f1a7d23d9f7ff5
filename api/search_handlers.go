package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/masoai/kbengine/internal/kberrors"
	"github.com/masoai/kbengine/model"
)

// SearchRequest defines the structure for search queries.
type SearchRequest struct {
	Query      string  `json:"query"`
	MaxResults int     `json:"max_results"`
	MinScore   float64 `json:"min_score"`
}

// SearchResponse wraps the ranked results with request metadata.
type SearchResponse struct {
	QueryID string               `json:"query_id"`
	Took    int64                `json:"took"` // milliseconds
	Total   int                  `json:"total"`
	Results []model.SearchResult `json:"results"`
}

// SearchHandler handles search requests against the held corpus.
// Request Body: SearchRequest
func (api *API) SearchHandler(c *gin.Context) {
	startTime := time.Now()

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}

	if result := ValidateQueryRequest(req.Query, req.MaxResults); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	results, err := api.kb.Search(req.Query, req.MaxResults, req.MinScore)
	if err != nil {
		if errors.Is(err, kberrors.ErrCorpusNotLoaded) {
			SendCorpusNotLoadedError(c)
			return
		}
		SendSearchError(c, err)
		return
	}

	took := time.Since(startTime)
	api.stats.TrackSearch(req.Query, len(results), took)

	c.JSON(http.StatusOK, SearchResponse{
		QueryID: uuid.New().String(),
		Took:    took.Milliseconds(),
		Total:   len(results),
		Results: results,
	})
}

// SignalsRequest defines the structure for query analysis requests.
type SignalsRequest struct {
	Query string `json:"query"`
}

// SignalsHandler analyzes a query for topical signals and weight hints.
// Request Body: SignalsRequest
func (api *API) SignalsHandler(c *gin.Context) {
	var req SignalsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}

	if result := ValidateQueryRequest(req.Query, 0); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	signals := api.kb.Analyze(req.Query)
	c.JSON(http.StatusOK, gin.H{
		"signals": signals,
		"weights": api.kb.SearchWeights(signals),
	})
}

// ContextRequest defines the structure for LLM context requests.
type ContextRequest struct {
	Query     string `json:"query"`
	MaxLength int    `json:"max_length"`
}

// ContextHandler runs the full analyze-search-render pipeline for a query.
// Request Body: ContextRequest
func (api *API) ContextHandler(c *gin.Context) {
	var req ContextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidQuery, "Invalid request body: "+err.Error())
		return
	}

	if result := ValidateQueryRequest(req.Query, 0); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	ctx, err := api.kb.ContextForLLM(req.Query, req.MaxLength)
	if err != nil {
		if errors.Is(err, kberrors.ErrCorpusNotLoaded) {
			SendCorpusNotLoadedError(c)
			return
		}
		SendError(c, http.StatusInternalServerError, ErrorCodeContextFailed, "Context build failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   req.Query,
		"context": ctx,
		"length":  len(ctx),
	})
}
