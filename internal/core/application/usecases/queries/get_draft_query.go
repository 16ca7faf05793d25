package queries

import (
	"errors"

	"deliverydesk/internal/pkg/guard"
)

var ErrGetDraftQueryIsNotConstructed = errors.New(
	"GetDraftQuery must be created via NewGetDraftQuery constructor",
)

// GetDraftQuery retrieves the draft being assembled and the edit state.
//
// Example:
//
//	draft, err := handler.Handle(ctx, NewGetDraftQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to read draft: %w", err)
//	}
//	if draft.EditingNumber != nil {
//	    fmt.Printf("Editing delivery %d\n", *draft.EditingNumber)
//	}
type GetDraftQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDraftQuery creates the query.
func NewGetDraftQuery() GetDraftQuery {
	return GetDraftQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDraftQuery) Validate() error {
	return q.guard.Validate(ErrGetDraftQueryIsNotConstructed)
}

// GetDraftQueryResponse is the draft read model.
type GetDraftQueryResponse struct {
	// State is "Idle" or "Editing".
	State string
	// EditingNumber is the delivery being edited, nil when Idle.
	EditingNumber *int
	// SelectedCustomerID is where the customer selector points after an edit started.
	SelectedCustomerID *string
	// Baseline holds the items the edited delivery already has.
	Baseline []LineItemView
	// Items holds the pending items that the next finalize commits.
	Items []LineItemView
}
