package services

import (
	"context"

	"github.com/shopspring/decimal"

	"spendwise/internal/aggregation"
	"spendwise/internal/models"
	"spendwise/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
	AttemptLogin(email, password string) (*models.User, error)
}

// RecordInput is an income or expense as submitted by a client.
type RecordInput struct {
	Name     string
	Value    any
	Category string
	Date     string

	// NewCategory is the label to add when an expense's category is the
	// new-category sentinel. Ignored for incomes.
	NewCategory string
}

// RecordList is one page of records plus the total of every record that
// passed the selection.
type RecordList struct {
	pagination.PageResponse[models.Record]
	FilteredTotal decimal.Decimal `json:"filtered_total"`
}

// RecordServicer defines the contract for one record collection (incomes
// or expenses) of an owner.
type RecordServicer interface {
	Kind() models.Kind
	Create(ctx context.Context, owner string, in RecordInput) (*models.Record, error)
	List(ctx context.Context, owner string, sel aggregation.Selection, page pagination.PageRequest) (*RecordList, error)
	Get(ctx context.Context, owner, id string) (*models.Record, error)
	Update(ctx context.Context, owner, id string, in RecordInput) (*models.Record, error)
	Delete(ctx context.Context, owner, id string) error
}

// CategoryServicer defines the contract for expense category labels.
type CategoryServicer interface {
	List(ctx context.Context, owner string) (*models.CategorySet, error)
	// Add stores label unless it is already visible to the owner. created
	// reports whether anything was written.
	Add(ctx context.Context, owner, label string) (stored string, created bool, err error)
}

// BudgetServicer defines the contract for the monthly budget.
type BudgetServicer interface {
	Set(ctx context.Context, owner string, value any) (*models.Budget, error)
	Get(ctx context.Context, owner string) (*models.Budget, error)
}

// ProfileServicer defines the contract for the owner's display profile.
type ProfileServicer interface {
	Get(ctx context.Context, owner string) (*models.Profile, error)
	Update(ctx context.Context, owner string, p models.Profile) (*models.Profile, error)
}

// SummaryServicer computes the derived household view on demand.
type SummaryServicer interface {
	Summary(ctx context.Context, owner string, sel aggregation.Selection) (*aggregation.Summary, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]any)
}
