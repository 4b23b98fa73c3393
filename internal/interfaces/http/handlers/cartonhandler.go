package handlers

import (
	"bytes"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	assignmentusecases "github.com/cartonworks/stockline/internal/application/assignment/usecases"
	"github.com/cartonworks/stockline/internal/application/carton/usecases"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/id"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/utils"
)

// maxImportBytes caps uploaded carton workbooks.
const maxImportBytes = 10 << 20

type CartonHandler struct {
	createUC     usecases.CreateCartonExecutor
	updateUC     usecases.UpdateCartonExecutor
	getUC        usecases.GetCartonExecutor
	listUC       usecases.ListCartonsExecutor
	deleteUC     usecases.DeleteCartonExecutor
	importUC     usecases.ImportCartonsExecutor
	exportUC     usecases.ExportCartonsExecutor
	compatibleUC assignmentusecases.CompatibleCartonsExecutor
	historyUC    assignmentusecases.ListAssignmentsExecutor
	logger       logger.Interface
}

func NewCartonHandler(
	createUC usecases.CreateCartonExecutor,
	updateUC usecases.UpdateCartonExecutor,
	getUC usecases.GetCartonExecutor,
	listUC usecases.ListCartonsExecutor,
	deleteUC usecases.DeleteCartonExecutor,
	importUC usecases.ImportCartonsExecutor,
	exportUC usecases.ExportCartonsExecutor,
	compatibleUC assignmentusecases.CompatibleCartonsExecutor,
	historyUC assignmentusecases.ListAssignmentsExecutor,
	logger logger.Interface,
) *CartonHandler {
	return &CartonHandler{
		createUC:     createUC,
		updateUC:     updateUC,
		getUC:        getUC,
		listUC:       listUC,
		deleteUC:     deleteUC,
		importUC:     importUC,
		exportUC:     exportUC,
		compatibleUC: compatibleUC,
		historyUC:    historyUC,
		logger:       logger,
	}
}

type CreateCartonRequest struct {
	Name          string  `json:"name" binding:"required,max=200"`
	CompanyName   string  `json:"company_name" binding:"max=200"`
	Length        float64 `json:"length" binding:"gt=0"`
	Breadth       float64 `json:"breadth" binding:"gt=0"`
	Height        float64 `json:"height" binding:"gt=0"`
	TotalQuantity int     `json:"total_quantity" binding:"gte=0"`
}

// UpdateCartonRequest replaces the descriptive fields. When total_quantity
// is present the stock total is revised and availability shifts with it.
type UpdateCartonRequest struct {
	Name          string  `json:"name" binding:"required,max=200"`
	CompanyName   string  `json:"company_name" binding:"max=200"`
	Length        float64 `json:"length" binding:"gt=0"`
	Breadth       float64 `json:"breadth" binding:"gt=0"`
	Height        float64 `json:"height" binding:"gt=0"`
	TotalQuantity *int    `json:"total_quantity" binding:"omitempty,gte=0"`
}

// CreateCarton handles POST /cartons
func (h *CartonHandler) CreateCarton(c *gin.Context) {
	userID, err := currentUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateCartonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create carton", "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCartonCommand{
		Name:          req.Name,
		CompanyName:   req.CompanyName,
		Length:        req.Length,
		Breadth:       req.Breadth,
		Height:        req.Height,
		TotalQuantity: req.TotalQuantity,
		CreatedBy:     userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Carton created successfully")
}

// UpdateCarton handles PUT /cartons/:id
func (h *CartonHandler) UpdateCarton(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixCarton, "carton")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCartonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update carton", "carton_sid", sid, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateCartonCommand{
		SID:           sid,
		Name:          req.Name,
		CompanyName:   req.CompanyName,
		Length:        req.Length,
		Breadth:       req.Breadth,
		Height:        req.Height,
		TotalQuantity: req.TotalQuantity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Carton updated successfully", result)
}

// GetCarton handles GET /cartons/:id
func (h *CartonHandler) GetCarton(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixCarton, "carton")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetCartonQuery{SID: sid})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListCartons handles GET /cartons
func (h *CartonHandler) ListCartons(c *gin.Context) {
	query := cartonListQuery(c)

	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Cartons, result.TotalCount, result.Page, result.PageSize)
}

// DeleteCarton handles DELETE /cartons/:id
func (h *CartonHandler) DeleteCarton(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixCarton, "carton")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeleteCartonCommand{SID: sid}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ImportCartons handles POST /cartons/import with a multipart "file" field.
func (h *CartonHandler) ImportCartons(c *gin.Context) {
	userID, err := currentUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file is required"))
		return
	}
	if !strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		utils.ErrorResponseWithError(c, errors.NewValidationError("only .xlsx workbooks are supported"))
		return
	}
	if header.Size > maxImportBytes {
		utils.ErrorResponseWithError(c, errors.NewValidationError("file is larger than 10 MB"))
		return
	}

	file, err := header.Open()
	if err != nil {
		h.logger.Errorw("failed to open uploaded workbook", "filename", header.Filename, "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("failed to read uploaded file"))
		return
	}
	defer file.Close()

	result, err := h.importUC.Execute(c.Request.Context(), usecases.ImportCartonsCommand{
		File:      file,
		CreatedBy: userID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Cartons imported successfully")
}

// ExportCartons handles GET /cartons/export. Filters match ListCartons.
func (h *CartonHandler) ExportCartons(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportUC.Execute(c.Request.Context(), &buf, cartonListQuery(c)); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sendWorkbook(c, "cartons", &buf)
}

// CompatibleCartons handles GET /cartons/compatible?dieline_ids=dl_a,dl_b
func (h *CartonHandler) CompatibleCartons(c *gin.Context) {
	sids, err := utils.ParseSIDList(c.Query("dieline_ids"), id.PrefixDieline, "dieline")
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
		DielineSIDs: sids,
		ToleranceMM: tolerance,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UsageHistory handles GET /cartons/:id/assignments
func (h *CartonHandler) UsageHistory(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixCarton, "carton")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.historyUC.Execute(c.Request.Context(), assignmentusecases.ListAssignmentsQuery{
		Page:      p.Page,
		PageSize:  p.PageSize,
		CartonSID: sid,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Assignments, result.TotalCount, result.Page, result.PageSize)
}

func cartonListQuery(c *gin.Context) usecases.ListCartonsQuery {
	p := utils.ParsePagination(c)
	return usecases.ListCartonsQuery{
		Search:        strings.TrimSpace(c.Query("search")),
		CompanyName:   strings.TrimSpace(c.Query("company_name")),
		OnlyAvailable: c.Query("available") == "true",
		Page:          p.Page,
		PageSize:      p.PageSize,
		SortBy:        c.Query("sort_by"),
		SortOrder:     c.Query("sort_order"),
	}
}
