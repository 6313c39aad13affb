package handlers

import (
	"github.com/gin-gonic/gin"

	"spendwise/internal/aggregation"
	apperrors "spendwise/internal/errors"
	"spendwise/internal/middleware"
)

// getUserID extracts the authenticated owner id from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return "", apperrors.ErrUnauthorized
	}
	id, ok := userID.(string)
	if !ok || id == "" {
		return "", apperrors.ErrUnauthorized
	}
	return id, nil
}

// parseSelection reads the date_filter and category query parameters.
// Both are optional; an absent filter selects everything.
func parseSelection(c *gin.Context) (aggregation.Selection, error) {
	filter, err := aggregation.ParseDateFilter(c.Query("date_filter"))
	if err != nil {
		return aggregation.Selection{}, err
	}
	return aggregation.Selection{Date: filter, Category: c.Query("category")}, nil
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
