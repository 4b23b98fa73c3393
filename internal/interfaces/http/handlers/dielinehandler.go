package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	assignmentusecases "github.com/cartonworks/stockline/internal/application/assignment/usecases"
	"github.com/cartonworks/stockline/internal/application/dieline/usecases"
	"github.com/cartonworks/stockline/internal/shared/id"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/utils"
)

type DielineHandler struct {
	createUC     usecases.CreateDielineExecutor
	updateUC     usecases.UpdateDielineExecutor
	getUC        usecases.GetDielineExecutor
	listUC       usecases.ListDielinesExecutor
	deleteUC     usecases.DeleteDielineExecutor
	compatibleUC assignmentusecases.CompatibleCartonsExecutor
	logger       logger.Interface
}

func NewDielineHandler(
	createUC usecases.CreateDielineExecutor,
	updateUC usecases.UpdateDielineExecutor,
	getUC usecases.GetDielineExecutor,
	listUC usecases.ListDielinesExecutor,
	deleteUC usecases.DeleteDielineExecutor,
	compatibleUC assignmentusecases.CompatibleCartonsExecutor,
	logger logger.Interface,
) *DielineHandler {
	return &DielineHandler{
		createUC:     createUC,
		updateUC:     updateUC,
		getUC:        getUC,
		listUC:       listUC,
		deleteUC:     deleteUC,
		compatibleUC: compatibleUC,
		logger:       logger,
	}
}

type DimensionRequest struct {
	Length  float64 `json:"length" binding:"gt=0"`
	Breadth float64 `json:"breadth" binding:"gt=0"`
	Height  float64 `json:"height" binding:"gt=0"`
	UPS     int     `json:"ups" binding:"gte=1,lte=10000"`
}

// DielineRequest is shared by create and update; an update replaces the
// dimension list as a whole.
type DielineRequest struct {
	Name       string             `json:"name" binding:"required,max=200"`
	Notes      string             `json:"notes" binding:"max=10000"`
	Dimensions []DimensionRequest `json:"dimensions" binding:"required,min=1,max=50,dive"`
}

func (r DielineRequest) inputs() []usecases.DimensionInput {
	out := make([]usecases.DimensionInput, 0, len(r.Dimensions))
	for _, d := range r.Dimensions {
		out = append(out, usecases.DimensionInput{
			Length:  d.Length,
			Breadth: d.Breadth,
			Height:  d.Height,
			UPS:     d.UPS,
		})
	}
	return out
}

// CreateDieline handles POST /dielines
func (h *DielineHandler) CreateDieline(c *gin.Context) {
	userID, err := currentUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DielineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create dieline", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateDielineCommand{
		Name:       req.Name,
		Notes:      req.Notes,
		Dimensions: req.inputs(),
		CreatedBy:  userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Dieline created successfully")
}

// UpdateDieline handles PUT /dielines/:id
func (h *DielineHandler) UpdateDieline(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDieline, "dieline")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DielineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update dieline", "dieline_sid", sid, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateDielineCommand{
		SID:        sid,
		Name:       req.Name,
		Notes:      req.Notes,
		Dimensions: req.inputs(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dieline updated successfully", result)
}

// GetDieline handles GET /dielines/:id
func (h *DielineHandler) GetDieline(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDieline, "dieline")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetDielineQuery{SID: sid})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListDielines handles GET /dielines
func (h *DielineHandler) ListDielines(c *gin.Context) {
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListDielinesQuery{
		Search:    strings.TrimSpace(c.Query("search")),
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Dielines, result.TotalCount, result.Page, result.PageSize)
}

// DeleteDieline handles DELETE /dielines/:id
func (h *DielineHandler) DeleteDieline(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDieline, "dieline")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteDielineCommand{SID: sid}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// CompatibleCartons handles GET /dielines/:id/compatible-cartons
func (h *DielineHandler) CompatibleCartons(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixDieline, "dieline")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	tolerance, err := utils.ParseOptionalFloatQuery(c, "tolerance_mm")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.compatibleUC.Execute(c.Request.Context(), assignmentusecases.CompatibleCartonsQuery{
		DielineSIDs: []string{sid},
		ToleranceMM: tolerance,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
