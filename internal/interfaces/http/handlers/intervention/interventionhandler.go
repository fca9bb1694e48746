package intervention

import (
	"time"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/intervention/usecases"
	"gmao/internal/interfaces/http/middleware"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/sanitize"
	"gmao/internal/shared/utils"
)

type PlanInterventionRequest struct {
	EquipmentID  uint      `json:"equipment_id" binding:"required"`
	TechnicianID uint      `json:"technician_id" binding:"required"`
	Description  string    `json:"description" binding:"required"`
	PlannedFor   time.Time `json:"planned_for" binding:"required"`
}

type InterventionHandler struct {
	planUC usecases.PlanInterventionExecutor
	listUC usecases.ListInterventionsExecutor
	logger logger.Interface
}

func NewInterventionHandler(
	planUC usecases.PlanInterventionExecutor,
	listUC usecases.ListInterventionsExecutor,
) *InterventionHandler {
	return &InterventionHandler{
		planUC: planUC,
		listUC: listUC,
		logger: logger.NewLogger(),
	}
}

// PlanIntervention handles POST /interventions
func (h *InterventionHandler) PlanIntervention(c *gin.Context) {
	var req PlanInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for plan intervention", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	plannerID, _ := middleware.GetUserID(c)

	result, err := h.planUC.Execute(c.Request.Context(), usecases.PlanInterventionCommand{
		EquipmentID:  req.EquipmentID,
		TechnicianID: req.TechnicianID,
		PlannerID:    plannerID,
		Description:  sanitize.Text(req.Description),
		PlannedFor:   req.PlannedFor,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result.Intervention, "Intervention planned successfully")
}

// ListInterventions handles GET /interventions
func (h *InterventionHandler) ListInterventions(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListInterventionsQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Interventions, result.Total, pagination.Page, pagination.PageSize)
}
