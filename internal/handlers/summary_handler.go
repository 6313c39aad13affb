package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/services"
	"spendwise/internal/session"
	"spendwise/internal/store"
)

// SummaryHandler serves the derived household view, once or as a stream.
type SummaryHandler struct {
	summaryService services.SummaryServicer
	store          store.Store
	location       *time.Location
}

// NewSummaryHandler creates a new SummaryHandler. Streams subscribe to st
// and evaluate date filters in loc.
func NewSummaryHandler(summaryService services.SummaryServicer, st store.Store, loc *time.Location) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService, store: st, location: loc}
}

// GetSummary handles computing the household summary.
// @Summary     Get summary
// @Description Totals, remaining balance, spending goal, budget alert and the filtered expense breakdown
// @Tags        summary
// @Produce     json
// @Security    BearerAuth
// @Param       date_filter query string false "all, today, thisWeek, thisMonth or thisYear"
// @Param       category    query string false "Category label, or all"
// @Success     200 {object} aggregation.Summary "Summary"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /summary [get]
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sel, err := parseSelection(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	summary, err := h.summaryService.Summary(c.Request.Context(), userID, sel)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// StreamSummary pushes a view every time the user's records change.
// @Summary     Stream summary
// @Description Server-Sent Events; each "summary" event carries the latest view. An "error" event carrying an ErrorResponse reports a collection that cannot be read; the store keeps retrying. Subscriptions end when the client disconnects.
// @Tags        summary
// @Produce     text/event-stream
// @Security    BearerAuth
// @Param       date_filter query string false "all, today, thisWeek, thisMonth or thisYear"
// @Param       category    query string false "Category label, or all"
// @Success     200 {object} session.View "Stream of views"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     502 {object} ErrorResponse "Record store unavailable"
// @Router      /summary/stream [get]
func (h *SummaryHandler) StreamSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	sel, err := parseSelection(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ctx := c.Request.Context()
	live, err := session.Open(ctx, h.store, userID, session.Options{Selection: sel, Location: h.location})
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer live.Close()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case view, ok := <-live.Views():
			if !ok {
				return
			}
			if view.Notice != "" {
				c.SSEvent("error", ErrorResponse{Error: ErrorDetail{Code: apperrors.ErrStore.Code, Message: view.Notice}})
			}
			if !view.Loading {
				c.SSEvent("summary", view)
			}
			c.Writer.Flush()
		}
	}
}
