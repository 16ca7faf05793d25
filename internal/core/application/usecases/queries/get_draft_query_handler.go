package queries

import "context"

// GetDraftQueryHandler reads the draft from the session workflow.
type GetDraftQueryHandler struct {
	reader WorkflowReader
}

// NewGetDraftQueryHandler creates a handler for GetDraftQuery.
func NewGetDraftQueryHandler(reader WorkflowReader) GetDraftQueryHandler {
	return GetDraftQueryHandler{reader: reader}
}

// Handle returns the draft read model.
func (h GetDraftQueryHandler) Handle(ctx context.Context, query GetDraftQuery) (GetDraftQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDraftQueryResponse{}, err
	}

	wf, err := h.reader.Snapshot(ctx)
	if err != nil {
		return GetDraftQueryResponse{}, err
	}

	resp := GetDraftQueryResponse{
		State:    wf.State().String(),
		Baseline: lineItemViews(wf.DraftBaseline()),
		Items:    lineItemViews(wf.DraftItems()),
	}
	if number, ok := wf.EditCursor(); ok {
		resp.EditingNumber = &number
	}
	if id, ok := wf.SelectedCustomer(); ok {
		s := id.String()
		resp.SelectedCustomerID = &s
	}

	return resp, nil
}
