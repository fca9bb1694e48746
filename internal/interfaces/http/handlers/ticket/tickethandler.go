package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/ticket/usecases"
	"gmao/internal/interfaces/http/middleware"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC    usecases.CreateTicketExecutor
	assignTicketUC    usecases.AssignTicketExecutor
	updateTicketUC    usecases.UpdateTicketExecutor
	getTicketUC       usecases.GetTicketExecutor
	checkAssignmentUC usecases.CheckAssignmentExecutor
	listTicketsUC     usecases.ListTicketsExecutor
	logger            logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	checkAssignmentUC usecases.CheckAssignmentExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:    createTicketUC,
		assignTicketUC:    assignTicketUC,
		updateTicketUC:    updateTicketUC,
		getTicketUC:       getTicketUC,
		checkAssignmentUC: checkAssignmentUC,
		listTicketsUC:     listTicketsUC,
		logger:            logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	userID, _ := middleware.GetUserID(c)

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, _ := middleware.GetUserID(c)
	role, _ := middleware.GetUserRole(c)

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID:    ticketID,
		RequesterID: userID,
		Role:        role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	role, _ := middleware.GetUserRole(c)
	if role.IsUtilisateur() {
		// Plain users only ever see their own tickets.
		userID, _ := middleware.GetUserID(c)
		req.CreatorID = userID
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Pagination.Page, req.Pagination.PageSize)
}

// ListTicketsByUser handles GET /tickets/user/:user_id. Plain users may only
// list their own tickets.
func (h *TicketHandler) ListTicketsByUser(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid user ID"))
		return
	}

	role, _ := middleware.GetUserRole(c)
	if role.IsUtilisateur() {
		userID, _ := middleware.GetUserID(c)
		if userID != uint(targetID) {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("cannot list another user's tickets"))
			return
		}
	}

	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	req.CreatorID = uint(targetID)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Pagination.Page, req.Pagination.PageSize)
}

// ListTicketsByTechnician handles GET /tickets/technician/:technician_id
func (h *TicketHandler) ListTicketsByTechnician(c *gin.Context) {
	technicianID, err := strconv.ParseUint(c.Param("technician_id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid technician ID"))
		return
	}

	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	req.AssigneeID = uint(technicianID)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, req.Pagination.Page, req.Pagination.PageSize)
}

// AssignTicket handles POST /tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	actorID, _ := middleware.GetUserID(c)

	result, err := h.assignTicketUC.Execute(c.Request.Context(), usecases.AssignTicketCommand{
		TicketID:   ticketID,
		AssigneeID: req.AssigneeID,
		ActorID:    actorID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

// UpdateTicket handles PUT and PATCH /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	actorID, _ := middleware.GetUserID(c)

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID, actorID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// CheckAssignment handles GET /tickets/:id/check-assignment?technician_id=
func (h *TicketHandler) CheckAssignment(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	technicianID, err := strconv.ParseUint(c.Query("technician_id"), 10, 32)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid technician ID"))
		return
	}

	result, err := h.checkAssignmentUC.Execute(c.Request.Context(), usecases.CheckAssignmentQuery{
		TicketID:     ticketID,
		TechnicianID: uint(technicianID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
