package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/masoai/kbengine/internal/kberrors"
	"github.com/masoai/kbengine/model"
)

// DiffRequest carries the scraped snapshot to compare the held corpus with.
type DiffRequest struct {
	Scraped *model.Corpus `json:"scraped"`
}

// GenerateDiffHandler compares the held corpus against a scraped snapshot.
// Request Body: DiffRequest
func (api *API) GenerateDiffHandler(c *gin.Context) {
	var req DiffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if req.Scraped == nil {
		result := &ValidationResult{}
		result.AddError("scraped", "scraped corpus is required")
		SendValidationError(c, result)
		return
	}

	diffResult, err := api.kb.GenerateDiff(req.Scraped)
	if err != nil {
		if errors.Is(err, kberrors.ErrCorpusNotLoaded) {
			SendCorpusNotLoadedError(c)
			return
		}
		SendError(c, http.StatusInternalServerError, ErrorCodeDiffFailed, "Diff generation failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, diffResult)
}

// ApplyDiffRequest selects changes from a previously generated changeset.
// Changes carries the full changeset; ChangeIDs the reviewed selection.
type ApplyDiffRequest struct {
	ChangeIDs []string           `json:"change_ids"`
	Changes   []model.DiffChange `json:"changes"`
}

// ApplyDiffHandler applies the selected changes to the held corpus and
// returns the resulting corpus. The caller installs it via PUT /corpus after
// review.
// Request Body: ApplyDiffRequest
func (api *API) ApplyDiffHandler(c *gin.Context) {
	var req ApplyDiffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}
	if len(req.ChangeIDs) == 0 {
		result := &ValidationResult{}
		result.AddError("change_ids", "at least one change id is required")
		SendValidationError(c, result)
		return
	}

	applied, err := api.kb.ApplyChanges(req.ChangeIDs, req.Changes)
	if err != nil {
		if errors.Is(err, kberrors.ErrCorpusNotLoaded) {
			SendCorpusNotLoadedError(c)
			return
		}
		SendError(c, http.StatusInternalServerError, ErrorCodeDiffFailed, "Apply failed: "+err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applied": len(req.ChangeIDs),
		"corpus":  applied,
	})
}
