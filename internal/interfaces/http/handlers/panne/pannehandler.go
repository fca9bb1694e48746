package panne

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/panne/usecases"
	"gmao/internal/interfaces/http/middleware"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/sanitize"
	"gmao/internal/shared/utils"
)

type ReportPanneRequest struct {
	EquipmentID uint   `json:"equipment_id" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type PanneHandler struct {
	reportUC  usecases.ReportPanneExecutor
	resolveUC usecases.ResolvePanneExecutor
	listUC    usecases.ListPannesExecutor
	logger    logger.Interface
}

func NewPanneHandler(
	reportUC usecases.ReportPanneExecutor,
	resolveUC usecases.ResolvePanneExecutor,
	listUC usecases.ListPannesExecutor,
) *PanneHandler {
	return &PanneHandler{
		reportUC:  reportUC,
		resolveUC: resolveUC,
		listUC:    listUC,
		logger:    logger.NewLogger(),
	}
}

// ReportPanne handles POST /pannes
func (h *PanneHandler) ReportPanne(c *gin.Context) {
	var req ReportPanneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for report panne", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	reporterID, _ := middleware.GetUserID(c)

	result, err := h.reportUC.Execute(c.Request.Context(), usecases.ReportPanneCommand{
		EquipmentID: req.EquipmentID,
		ReporterID:  reporterID,
		Description: sanitize.Text(req.Description),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Panne, "Panne reported successfully")
}

// ResolvePanne handles POST /pannes/:id/resolve
func (h *PanneHandler) ResolvePanne(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid panne ID"))
		return
	}

	actorID, _ := middleware.GetUserID(c)

	result, err := h.resolveUC.Execute(c.Request.Context(), usecases.ResolvePanneCommand{
		PanneID: uint(id),
		ActorID: actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Panne resolved", result.Panne)
}

// ListPannes handles GET /pannes
func (h *PanneHandler) ListPannes(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListPannesQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Pannes, result.Total, pagination.Page, pagination.PageSize)
}
