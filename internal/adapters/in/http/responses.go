package http

import (
	"time"

	"partnerconsole/internal/core/application/usecases/queries"
	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/core/domain/model/session"
	"partnerconsole/internal/core/ports"
)

// envelope is the uniform response wrapper of the console API, mirroring the
// shape the retail platform itself answers with.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func ok(data any) envelope {
	return envelope{Success: true, Data: data}
}

func okMessage(message string) envelope {
	return envelope{Success: true, Message: message}
}

func fail(message string, data any) envelope {
	return envelope{Success: false, Message: message, Data: data}
}

type partnerResponse struct {
	ID          string     `json:"id"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsVerified  bool       `json:"isVerified"`
	PhoneNumber string     `json:"phoneNumber,omitempty"`
	LastLogin   *time.Time `json:"lastLogin,omitempty"`
}

type sessionResponse struct {
	State   string           `json:"state"`
	Partner *partnerResponse `json:"partner,omitempty"`
}

func toSessionResponse(s *session.Session) sessionResponse {
	resp := sessionResponse{State: s.State().String()}

	if p := s.Partner(); p != nil {
		resp.Partner = &partnerResponse{
			ID:          p.ID().String(),
			FullName:    p.FullName(),
			Email:       p.Email(),
			Role:        p.Role(),
			IsVerified:  p.IsVerified(),
			PhoneNumber: p.PhoneNumber(),
			LastLogin:   p.LastLogin(),
		}
	}

	return resp
}

type addressResponse struct {
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Line1      string `json:"addressLine1"`
	Line2      string `json:"addressLine2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode,omitempty"`
}

type itemResponse struct {
	ID          string  `json:"id"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
	SKU         string  `json:"sku,omitempty"`
	ColorName   string  `json:"colorName,omitempty"`
	SizeName    string  `json:"sizeName,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type orderResponse struct {
	ID              string          `json:"id"`
	Status          string          `json:"status"`
	AssignedToMe    bool            `json:"assignedToMe"`
	AssignedPartner string          `json:"assignedPartner,omitempty"`
	ShippingAddress addressResponse `json:"shippingAddress"`
	Items           []itemResponse  `json:"items"`
	TotalAmount     float64         `json:"totalAmount"`
	Subtotal        float64         `json:"subtotal"`
	ShippingFee     float64         `json:"shippingFee"`
	DiscountAmount  float64         `json:"discountAmount"`
	PaymentMethod   string          `json:"paymentMethod"`
	PaymentStatus   string          `json:"paymentStatus"`
	CouponCode      string          `json:"couponCode,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func toOrderResponse(o *order.Order, viewer *session.Session) orderResponse {
	items := make([]itemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, itemResponse{
			ID:          item.ID().String(),
			ProductName: item.ProductName(),
			Quantity:    item.Quantity(),
			UnitPrice:   item.UnitPrice(),
			TotalPrice:  item.TotalPrice(),
			SKU:         item.SKU(),
			ColorName:   item.ColorName(),
			SizeName:    item.SizeName(),
			ImageURL:    item.ImageURL(),
		})
	}

	address := o.Address()
	resp := orderResponse{
		ID:     o.ID().String(),
		Status: o.Status().String(),
		ShippingAddress: addressResponse{
			Name:       address.Name(),
			Phone:      address.Phone(),
			Line1:      address.Line1(),
			Line2:      address.Line2(),
			City:       address.City(),
			State:      address.State(),
			PostalCode: address.PostalCode(),
		},
		Items:          items,
		TotalAmount:    o.Charges().Total(),
		Subtotal:       o.Charges().Subtotal(),
		ShippingFee:    o.Charges().ShippingFee(),
		DiscountAmount: o.Charges().DiscountAmount(),
		PaymentMethod:  o.Payment().Method(),
		PaymentStatus:  o.Payment().Status(),
		CouponCode:     o.Payment().CouponCode(),
		CreatedAt:      o.CreatedAt(),
	}

	if !o.IsUnassigned() {
		resp.AssignedPartner = o.ClaimantLabel()
		if viewer != nil && viewer.Partner() != nil {
			resp.AssignedToMe = o.IsAssignedTo(viewer.Partner().ID())
		}
	}

	return resp
}

func toOrderListResponse(orders []*order.Order, viewer *session.Session) []orderResponse {
	responses := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o, viewer))
	}
	return responses
}

type dashboardOrdersResponse struct {
	Assigned        int `json:"assigned"`
	Completed       int `json:"completed"`
	Pending         int `json:"pending"`
	Cancelled       int `json:"cancelled"`
	ReturnRequested int `json:"returnRequested"`
}

type dashboardRevenueResponse struct {
	AssignedValue   float64 `json:"assignedValue"`
	CompletedValue  float64 `json:"completedValue"`
	InProgressValue float64 `json:"inProgressValue"`
	OutstandingCOD  float64 `json:"outstandingCod"`
}

type dashboardResponse struct {
	Orders  dashboardOrdersResponse  `json:"orders"`
	Revenue dashboardRevenueResponse `json:"revenue"`
}

func toDashboardResponse(d *ports.PartnerDashboard) dashboardResponse {
	return dashboardResponse{
		Orders: dashboardOrdersResponse{
			Assigned:        d.Orders.Assigned,
			Completed:       d.Orders.Completed,
			Pending:         d.Orders.Pending,
			Cancelled:       d.Orders.Cancelled,
			ReturnRequested: d.Orders.ReturnRequested,
		},
		Revenue: dashboardRevenueResponse{
			AssignedValue:   d.Revenue.AssignedValue,
			CompletedValue:  d.Revenue.CompletedValue,
			InProgressValue: d.Revenue.InProgressValue,
			OutstandingCOD:  d.Revenue.OutstandingCOD,
		},
	}
}

type labelItemResponse struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	SKU      string  `json:"sku,omitempty"`
	Amount   float64 `json:"amount"`
}

type labelResponse struct {
	OrderID        string              `json:"orderId"`
	CustomerName   string              `json:"customerName"`
	CustomerPhone  string              `json:"customerPhone,omitempty"`
	AddressLine1   string              `json:"addressLine1"`
	AddressLine2   string              `json:"addressLine2,omitempty"`
	City           string              `json:"city"`
	State          string              `json:"state"`
	PostalCode     string              `json:"postalCode,omitempty"`
	Items          []labelItemResponse `json:"items"`
	Subtotal       float64             `json:"subtotal"`
	ShippingFee    float64             `json:"shippingFee"`
	DiscountAmount float64             `json:"discountAmount"`
	CODAmount      float64             `json:"codAmount"`
	PaymentMethod  string              `json:"paymentMethod"`
}

func toLabelResponse(label *queries.ShippingLabel) labelResponse {
	items := make([]labelItemResponse, 0, len(label.Items))
	for _, item := range label.Items {
		items = append(items, labelItemResponse{
			Name:     item.Name,
			Quantity: item.Quantity,
			SKU:      item.SKU,
			Amount:   item.Amount,
		})
	}

	return labelResponse{
		OrderID:        label.OrderID,
		CustomerName:   label.CustomerName,
		CustomerPhone:  label.CustomerPhone,
		AddressLine1:   label.AddressLine1,
		AddressLine2:   label.AddressLine2,
		City:           label.City,
		State:          label.State,
		PostalCode:     label.PostalCode,
		Items:          items,
		Subtotal:       label.Subtotal,
		ShippingFee:    label.ShippingFee,
		DiscountAmount: label.DiscountAmount,
		CODAmount:      label.CODAmount,
		PaymentMethod:  label.PaymentMethod,
	}
}
