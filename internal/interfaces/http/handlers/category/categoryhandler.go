package category

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gmao/internal/application/category/usecases"
	"gmao/internal/shared/logger"
	"gmao/internal/shared/utils"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description,omitempty" binding:"max=255"`
}

type CategoryHandler struct {
	createUC usecases.CreateCategoryExecutor
	listUC   usecases.ListCategoriesExecutor
	logger   logger.Interface
}

func NewCategoryHandler(
	createUC usecases.CreateCategoryExecutor,
	listUC usecases.ListCategoriesExecutor,
) *CategoryHandler {
	return &CategoryHandler{
		createUC: createUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

// CreateCategory handles POST /categories (admin only)
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateCategoryCommand{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Category created successfully")
}

// ListCategories handles GET /categories
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
