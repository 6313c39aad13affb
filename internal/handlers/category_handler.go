package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/services"
)

// CategoryHandler handles expense category requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
	auditService    services.AuditServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer, auditService services.AuditServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, auditService: auditService}
}

// AddCategoryRequest represents the request payload for adding a category.
type AddCategoryRequest struct {
	Label string `json:"label" binding:"required,max=100"`
}

// GetCategories handles listing the category labels visible to the user.
// @Summary     Get categories
// @Description Get the suggested expense categories and the user's own labels
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.CategorySet "Category labels"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	set, err := h.categoryService.List(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": set})
}

// AddCategory handles adding a category label. Adding a label that already
// exists changes nothing; only a newly stored label is recorded in the
// audit log as CREATE_CATEGORY.
// @Summary     Add a category
// @Description Add an expense category label. Returns 201 when stored and 200 when it already existed.
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body AddCategoryRequest true "Category label"
// @Success     200 {object} map[string]interface{} "Category already present"
// @Success     201 {object} map[string]interface{} "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /categories [post]
func (h *CategoryHandler) AddCategory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req AddCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	label, created, err := h.categoryService.Add(c.Request.Context(), userID, req.Label)
	if err != nil {
		respondWithError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		h.auditService.Log(userID, "CREATE_CATEGORY", "category", label, c.ClientIP(), nil)
	}
	c.JSON(status, gin.H{"category": label, "created": created})
}
