package queries

import "context"

// GetDeliveriesQueryHandler reads the delivery registry.
type GetDeliveriesQueryHandler struct {
	reader WorkflowReader
}

// NewGetDeliveriesQueryHandler creates a handler for GetDeliveriesQuery.
func NewGetDeliveriesQueryHandler(reader WorkflowReader) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{reader: reader}
}

// Handle returns every delivery together with the total counter.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) (GetDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveriesQueryResponse{}, err
	}

	wf, err := h.reader.Snapshot(ctx)
	if err != nil {
		return GetDeliveriesQueryResponse{}, err
	}

	deliveries := wf.Deliveries()
	resp := GetDeliveriesQueryResponse{
		Deliveries: make([]DeliveryView, 0, len(deliveries)),
		Total:      wf.DeliveryTotal(),
	}
	for _, d := range deliveries {
		resp.Deliveries = append(resp.Deliveries, NewDeliveryView(d))
	}
	if number, ok := wf.EditCursor(); ok {
		resp.EditingNumber = &number
	}

	return resp, nil
}
