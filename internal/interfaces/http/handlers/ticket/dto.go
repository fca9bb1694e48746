package ticket

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/ticket/usecases"
	"gmao/internal/shared/errors"
	"gmao/internal/shared/sanitize"
	"gmao/internal/shared/utils"
)

type CreateTicketRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"required"`
	Priority    string `json:"priority" binding:"required"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	EquipmentID uint   `json:"equipment_id" binding:"required"`
	Comment     string `json:"comment,omitempty" binding:"max=500"`
}

func (r *CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       sanitize.Text(r.Title),
		Description: sanitize.Text(r.Description),
		Priority:    r.Priority,
		CategoryID:  r.CategoryID,
		EquipmentID: r.EquipmentID,
		CreatorID:   creatorID,
		Comment:     sanitize.Text(r.Comment),
	}
}

type AssignTicketRequest struct {
	AssigneeID uint `json:"assignee_id" binding:"required"`
}

type UpdateTicketRequest struct {
	Status     *string `json:"status,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	Comment    *string `json:"comment,omitempty"`
	AssigneeID *uint   `json:"assignee_id,omitempty"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, actorID uint) usecases.UpdateTicketCommand {
	comment := r.Comment
	if comment != nil {
		clean := sanitize.Text(*comment)
		comment = &clean
	}

	return usecases.UpdateTicketCommand{
		TicketID:   ticketID,
		ActorID:    actorID,
		Status:     r.Status,
		Priority:   r.Priority,
		Comment:    comment,
		AssigneeID: r.AssigneeID,
	}
}

type ListTicketsRequest struct {
	Pagination utils.Pagination
	Status     string
	Priority   string
	CreatorID  uint
	AssigneeID uint
	CategoryID uint
}

func (r *ListTicketsRequest) ToQuery() usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Status:     r.Status,
		Priority:   r.Priority,
		CreatorID:  r.CreatorID,
		AssigneeID: r.AssigneeID,
		CategoryID: r.CategoryID,
		Page:       r.Pagination.Page,
		PageSize:   r.Pagination.PageSize,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	req := &ListTicketsRequest{
		Pagination: utils.ParsePagination(c),
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
	}

	for param, target := range map[string]*uint{
		"creator_id":  &req.CreatorID,
		"assignee_id": &req.AssigneeID,
		"category_id": &req.CategoryID,
	} {
		raw := c.Query(param)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid " + param)
		}
		*target = uint(id)
	}

	return req, nil
}

func parseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}
