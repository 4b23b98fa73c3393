package handlers

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cartonworks/stockline/internal/application/assignment/usecases"
	"github.com/cartonworks/stockline/internal/shared/constants"
	"github.com/cartonworks/stockline/internal/shared/errors"
	"github.com/cartonworks/stockline/internal/shared/id"
	"github.com/cartonworks/stockline/internal/shared/logger"
	"github.com/cartonworks/stockline/internal/shared/utils"
)

// HeaderIdempotentReplay marks a response served from an earlier request.
const HeaderIdempotentReplay = "Idempotent-Replayed"

const maxIdempotencyKeyLength = 128

type AssignmentHandler struct {
	createUC  usecases.CreateAssignmentExecutor
	listUC    usecases.ListAssignmentsExecutor
	getUC     usecases.GetAssignmentExecutor
	reverseUC usecases.ReverseAssignmentExecutor
	exportUC  usecases.ExportAssignmentsExecutor
	logger    logger.Interface
}

func NewAssignmentHandler(
	createUC usecases.CreateAssignmentExecutor,
	listUC usecases.ListAssignmentsExecutor,
	getUC usecases.GetAssignmentExecutor,
	reverseUC usecases.ReverseAssignmentExecutor,
	exportUC usecases.ExportAssignmentsExecutor,
	logger logger.Interface,
) *AssignmentHandler {
	return &AssignmentHandler{
		createUC:  createUC,
		listUC:    listUC,
		getUC:     getUC,
		reverseUC: reverseUC,
		exportUC:  exportUC,
		logger:    logger,
	}
}

// DimensionSetRequest may echo the geometry the client displayed. Only the
// dieline, index and sheets are read; the snapshot comes from the dieline.
type DimensionSetRequest struct {
	DielineID      string  `json:"dieline_id"`
	DimensionIndex int     `json:"dimension_index"`
	Length         float64 `json:"length"`
	Breadth        float64 `json:"breadth"`
	Height         float64 `json:"height"`
	UPS            int     `json:"ups"`
	Sheets         int     `json:"sheets"`
}

type CartonUsageRequest struct {
	CartonID     string `json:"carton_id"`
	QuantityUsed int    `json:"quantity_used"`
}

type CreateAssignmentRequest struct {
	DielineIDs    []string              `json:"dieline_ids"`
	DimensionSets []DimensionSetRequest `json:"dimension_sets" binding:"max=200"`
	CartonIDs     []string              `json:"carton_ids"`
	CartonUsage   []CartonUsageRequest  `json:"carton_usage" binding:"max=200"`
}

type ReverseAssignmentRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// CreateAssignment handles POST /assignments. A repeated Idempotency-Key
// returns the assignment created by the first request with 200.
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	userID, err := currentUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	key := strings.TrimSpace(c.GetHeader(constants.HeaderIdempotencyKey))
	if len(key) > maxIdempotencyKeyLength {
		utils.ErrorResponseWithError(c, errors.NewValidationError("Idempotency-Key is too long"))
		return
	}

	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create assignment", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindError(err))
		return
	}

	sets := make([]usecases.DimensionSetInput, 0, len(req.DimensionSets))
	for _, s := range req.DimensionSets {
		sets = append(sets, usecases.DimensionSetInput{
			DielineSID:     s.DielineID,
			DimensionIndex: s.DimensionIndex,
			Sheets:         s.Sheets,
		})
	}
	usage := make([]usecases.CartonUsageInput, 0, len(req.CartonUsage))
	for _, u := range req.CartonUsage {
		usage = append(usage, usecases.CartonUsageInput{
			CartonSID:    u.CartonID,
			QuantityUsed: u.QuantityUsed,
		})
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateAssignmentCommand{
		DielineSIDs:    req.DielineIDs,
		DimensionSets:  sets,
		CartonSIDs:     req.CartonIDs,
		CartonUsage:    usage,
		AssignedBy:     userID,
		IdempotencyKey: key,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Replayed {
		c.Header(HeaderIdempotentReplay, "true")
		utils.SuccessResponse(c, http.StatusOK, "Assignment already recorded", result.Assignment)
		return
	}
	utils.CreatedResponse(c, result.Assignment, "Assignment created successfully")
}

// ListAssignments handles GET /assignments
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	query, err := assignmentListQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	h.list(c, query)
}

// ListMine handles GET /assignments/mine
func (h *AssignmentHandler) ListMine(c *gin.Context) {
	userID, err := currentUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query, err := assignmentListQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	query.AssignedBy = &userID
	h.list(c, query)
}

func (h *AssignmentHandler) list(c *gin.Context, query usecases.ListAssignmentsQuery) {
	result, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, result.Assignments, result.TotalCount, result.Page, result.PageSize)
}

// GetAssignment handles GET /assignments/:id
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixAssignment, "assignment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetAssignmentQuery{SID: sid})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ReverseAssignment handles POST /assignments/:id/reverse
func (h *AssignmentHandler) ReverseAssignment(c *gin.Context) {
	userID, err := currentUserID(c, h.logger)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sid, err := utils.ParseSIDParam(c, "id", id.PrefixAssignment, "assignment")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ReverseAssignmentRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for reverse assignment", "assignment_sid", sid, "error", err)
			utils.ErrorResponseWithError(c, utils.BindError(err))
			return
		}
	}

	result, err := h.reverseUC.Execute(c.Request.Context(), usecases.ReverseAssignmentCommand{
		SID:        sid,
		ReversedBy: userID,
		Reason:     strings.TrimSpace(req.Reason),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assignment reversed successfully", result)
}

// ExportAssignments handles GET /assignments/export. Filters match ListAssignments.
func (h *AssignmentHandler) ExportAssignments(c *gin.Context) {
	query, err := assignmentListQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.exportUC.Execute(c.Request.Context(), &buf, query); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	sendWorkbook(c, "assignments", &buf)
}

func assignmentListQuery(c *gin.Context) (usecases.ListAssignmentsQuery, error) {
	p := utils.ParsePagination(c)
	query := usecases.ListAssignmentsQuery{Page: p.Page, PageSize: p.PageSize}

	if raw := c.Query("carton_id"); raw != "" {
		if err := id.ValidatePrefix(raw, id.PrefixCarton); err != nil {
			return query, errors.NewValidationError("invalid carton ID format, expected ctn_xxxxx")
		}
		query.CartonSID = raw
	}

	since, err := parseDateQuery(c, "since")
	if err != nil {
		return query, err
	}
	query.Since = since
	return query, nil
}
