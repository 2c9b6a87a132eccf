package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/core/ports"
	"partnerconsole/internal/pkg/errs"
)

const (
	listOrdersPath   = "/orders/partner/list"
	orderPathPrefix  = "/orders/partner/"
	dashboardPath    = "/dashboard/partner"
	acceptPathSuffix = "/accept"
	statusPathSuffix = "/status"
)

// OrderClient implements ports.OrderClient against the platform's partner
// order endpoints.
type OrderClient struct {
	client *Client
}

// NewOrderClient creates an order adapter on top of a platform client.
func NewOrderClient(client *Client) *OrderClient {
	return &OrderClient{client: client}
}

var _ ports.OrderClient = (*OrderClient)(nil)

// List fetches the full partner-visible order set.
func (o *OrderClient) List(ctx context.Context, accessToken string) ([]*order.Order, error) {
	resp, err := o.client.do(ctx, http.MethodGet, listOrdersPath, accessToken, nil)
	if err != nil {
		return nil, err
	}
	if err = mapCommonError("list orders", resp); err != nil {
		return nil, err
	}

	var data []orderDTO
	if err = json.Unmarshal(resp.envelope.Data, &data); err != nil {
		return nil, &ports.MalformedResponseError{Op: "list orders", Cause: err}
	}

	orders := make([]*order.Order, 0, len(data))
	for _, dto := range data {
		domainOrder, convErr := dto.toDomain()
		if convErr != nil {
			return nil, &ports.MalformedResponseError{Op: "list orders", Cause: convErr}
		}
		orders = append(orders, domainOrder)
	}

	return orders, nil
}

// Get fetches one order by its platform identifier.
func (o *OrderClient) Get(ctx context.Context, accessToken string, orderID kernel.RemoteID) (*order.Order, error) {
	resp, err := o.client.do(ctx, http.MethodGet, orderPathPrefix+orderID.String(), accessToken, nil)
	if err != nil {
		return nil, err
	}
	if resp.status == http.StatusNotFound {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}
	if err = mapCommonError("get order", resp); err != nil {
		return nil, err
	}

	return decodeOrder("get order", resp.envelope.Data)
}

// Accept claims an unassigned order for the calling partner.
// A lost claim race maps to ports.AlreadyAssignedError. The platform
// reports it either as HTTP 409 or as a wrapped rejection whose message
// names the existing assignment.
func (o *OrderClient) Accept(ctx context.Context, accessToken string, orderID kernel.RemoteID) (*order.Order, error) {
	path := orderPathPrefix + orderID.String() + acceptPathSuffix

	resp, err := o.client.do(ctx, http.MethodPatch, path, accessToken, nil)
	if err != nil {
		return nil, err
	}
	if resp.status == http.StatusConflict || isAlreadyAssignedRejection(resp) {
		return nil, &ports.AlreadyAssignedError{OrderID: orderID}
	}
	if err = mapCommonError("accept order", resp); err != nil {
		return nil, err
	}

	return decodeOrder("accept order", resp.envelope.Data)
}

// isAlreadyAssignedRejection recognizes a claim race reported as a wrapped
// failure rather than a 409, e.g. "Order already assigned to another
// partner".
func isAlreadyAssignedRejection(resp response) bool {
	if resp.status == http.StatusUnauthorized || resp.envelope.Success {
		return false
	}
	return strings.Contains(strings.ToLower(resp.envelope.Message), "already assigned")
}

// UpdateStatus moves an order to the desired status. The status travels in
// its wire form, e.g. "OUT_FOR_DELIVERY".
func (o *OrderClient) UpdateStatus(
	ctx context.Context,
	accessToken string,
	orderID kernel.RemoteID,
	status order.Status,
) (*order.Order, error) {
	path := orderPathPrefix + orderID.String() + statusPathSuffix
	body := map[string]string{"status": status.String()}

	resp, err := o.client.do(ctx, http.MethodPatch, path, accessToken, body)
	if err != nil {
		return nil, err
	}
	if err = mapCommonError("update order status", resp); err != nil {
		return nil, err
	}

	return decodeOrder("update order status", resp.envelope.Data)
}

// Dashboard fetches the partner's aggregate counters.
func (o *OrderClient) Dashboard(ctx context.Context, accessToken string) (*ports.PartnerDashboard, error) {
	resp, err := o.client.do(ctx, http.MethodGet, dashboardPath, accessToken, nil)
	if err != nil {
		return nil, err
	}
	if err = mapCommonError("dashboard", resp); err != nil {
		return nil, err
	}

	var data dashboardDTO
	if err = json.Unmarshal(resp.envelope.Data, &data); err != nil {
		return nil, &ports.MalformedResponseError{Op: "dashboard", Cause: err}
	}

	return data.toDomain(), nil
}

func decodeOrder(op string, raw json.RawMessage) (*order.Order, error) {
	var dto orderDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return nil, &ports.MalformedResponseError{Op: op, Cause: err}
	}

	domainOrder, err := dto.toDomain()
	if err != nil {
		return nil, &ports.MalformedResponseError{Op: op, Cause: err}
	}

	return domainOrder, nil
}
