package equipment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/equipment/usecases"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/utils"
)

type CreateEquipmentRequest struct {
	Serial   string `json:"serial" binding:"required,max=100"`
	Name     string `json:"name" binding:"required,max=255"`
	Location string `json:"location,omitempty" binding:"max=255"`
	HolderID uint   `json:"holder_id,omitempty"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type EquipmentHandler struct {
	createUC       usecases.CreateEquipmentExecutor
	getUC          usecases.GetEquipmentExecutor
	listUC         usecases.ListEquipmentExecutor
	updateStatusUC usecases.UpdateEquipmentStatusExecutor
	logger         logger.Interface
}

func NewEquipmentHandler(
	createUC usecases.CreateEquipmentExecutor,
	getUC usecases.GetEquipmentExecutor,
	listUC usecases.ListEquipmentExecutor,
	updateStatusUC usecases.UpdateEquipmentStatusExecutor,
) *EquipmentHandler {
	return &EquipmentHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		updateStatusUC: updateStatusUC,
		logger:         logger.NewLogger(),
	}
}

// CreateEquipment handles POST /equipements
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create equipment", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateEquipmentCommand{
		Serial:   req.Serial,
		Name:     req.Name,
		Location: req.Location,
		HolderID: req.HolderID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Equipment, "Equipment created successfully")
}

// GetEquipment handles GET /equipements/:id
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	query := usecases.GetEquipmentQuery{}

	// The path parameter is a numeric ID or a serial number.
	raw := c.Param("id")
	if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
		query.EquipmentID = uint(id)
	} else {
		query.Serial = raw
	}

	result, err := h.getUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Equipment)
}

// ListEquipment handles GET /equipements
func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListEquipmentQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Equipments, result.Total, pagination.Page, pagination.PageSize)
}

// UpdateStatus handles PATCH /equipements/:id/status (admin only)
func (h *EquipmentHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid equipment ID"))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), usecases.UpdateEquipmentStatusCommand{
		EquipmentID: uint(id),
		Status:      req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Equipment status updated", result.Equipment)
}
