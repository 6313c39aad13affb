package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
	"spendwise/internal/services"
)

// RecordHandler serves one record collection. The API mounts one for
// incomes and one for expenses.
type RecordHandler struct {
	recordService services.RecordServicer
	auditService  services.AuditServicer
}

// NewRecordHandler creates a new RecordHandler.
func NewRecordHandler(recordService services.RecordServicer, auditService services.AuditServicer) *RecordHandler {
	return &RecordHandler{recordService: recordService, auditService: auditService}
}

// RecordRequest represents the request payload for creating or replacing an
// income or expense. Incomes carry their value in amount, expenses in cost;
// either may be a number or a numeric string.
type RecordRequest struct {
	Name        string `json:"name" binding:"max=200"`
	Amount      any    `json:"amount" swaggertype:"number"`
	Cost        any    `json:"cost" swaggertype:"number"`
	Category    string `json:"category" binding:"max=100"`
	Date        string `json:"date" binding:"record_date"`
	NewCategory string `json:"new_category" binding:"max=100"`
}

func (r RecordRequest) input(kind models.Kind) services.RecordInput {
	value := r.Amount
	if kind == models.KindExpense && r.Cost != nil {
		value = r.Cost
	}
	return services.RecordInput{
		Name:        r.Name,
		Value:       value,
		Category:    r.Category,
		Date:        r.Date,
		NewCategory: r.NewCategory,
	}
}

func (h *RecordHandler) resource() string {
	return string(h.recordService.Kind())
}

func (h *RecordHandler) action(verb string) string {
	return verb + "_" + strings.ToUpper(h.resource())
}

// ListRecords handles listing incomes or expenses.
// @Summary     List incomes or expenses
// @Description Get a filtered, paginated list of records, newest first, with the total of every record passing the filters
// @Tags        records
// @Produce     json
// @Security    BearerAuth
// @Param       date_filter query string false "all, today, thisWeek, thisMonth or thisYear"
// @Param       category    query string false "Category label, or all"
// @Param       page        query int    false "Page number (default 1)"
// @Param       page_size   query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} services.RecordList "Paginated records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /incomes [get]
// @Router      /expenses [get]
func (h *RecordHandler) ListRecords(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sel, err := parseSelection(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.recordService.List(c.Request.Context(), userID, sel, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// CreateRecord handles adding an income or expense. The stored record is
// written to the audit log as CREATE_INCOME or CREATE_EXPENSE.
// @Summary     Add an income or expense
// @Description Validate and store a new record. An expense whose category is "other" and which carries new_category adds that label first.
// @Tags        records
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body RecordRequest true "Record details"
// @Success     201 {object} models.Record "Record created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /incomes [post]
// @Router      /expenses [post]
func (h *RecordHandler) CreateRecord(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.recordService.Create(c.Request.Context(), userID, req.input(h.recordService.Kind()))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, h.action("CREATE"), h.resource(), record.ID, c.ClientIP(),
		map[string]any{"name": record.Name, "value": record.Amount.String(), "category": record.Category})

	c.JSON(http.StatusCreated, gin.H{h.resource(): record})
}

// UpdateRecord handles replacing an income or expense; logs UPDATE_* to
// the audit log.
// @Summary     Replace an income or expense
// @Description Overwrite an existing record. Its creation timestamp is kept.
// @Tags        records
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string        true "Record ID"
// @Param       request body RecordRequest true "Record details"
// @Success     200 {object} models.Record "Updated record"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /incomes/{id} [put]
// @Router      /expenses/{id} [put]
func (h *RecordHandler) UpdateRecord(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.recordService.Update(c.Request.Context(), userID, c.Param("id"), req.input(h.recordService.Kind()))
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, h.action("UPDATE"), h.resource(), record.ID, c.ClientIP(),
		map[string]any{"name": record.Name, "value": record.Amount.String(), "category": record.Category})

	c.JSON(http.StatusOK, gin.H{h.resource(): record})
}

// DeleteRecord handles removing an income or expense; logs DELETE_* to
// the audit log.
// @Summary     Delete an income or expense
// @Description Remove a record. Deleting a record that no longer exists succeeds.
// @Tags        records
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Record ID"
// @Success     200 {object} map[string]string "Record deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /incomes/{id} [delete]
// @Router      /expenses/{id} [delete]
func (h *RecordHandler) DeleteRecord(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	id := c.Param("id")
	if err := h.recordService.Delete(c.Request.Context(), userID, id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, h.action("DELETE"), h.resource(), id, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}
