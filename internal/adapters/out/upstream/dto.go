package upstream

import (
	"fmt"
	"time"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/core/domain/model/order"
	"partnerconsole/internal/core/domain/model/partner"
	"partnerconsole/internal/core/ports"
)

// partnerDTO is the platform's shape for a partner profile.
type partnerDTO struct {
	ID          string     `json:"_id"`
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Role        string     `json:"role"`
	IsVerified  bool       `json:"isVerified"`
	PhoneNumber string     `json:"phoneNumber"`
	LastLogin   *time.Time `json:"lastLogin"`
}

func (d partnerDTO) toDomain() (*partner.Partner, error) {
	id, err := kernel.NewRemoteID(d.ID)
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(
		id, d.FullName, d.Email, d.Role, d.IsVerified, d.PhoneNumber, d.LastLogin,
	)
}

// loginDataDTO is the payload of a successful login. Older platform
// deployments name the token partner_auth_token, newer ones accessToken.
type loginDataDTO struct {
	PartnerAuthToken string     `json:"partner_auth_token"`
	AccessToken      string     `json:"accessToken"`
	RefreshToken     string     `json:"refreshToken"`
	User             partnerDTO `json:"user"`
}

func (d loginDataDTO) accessToken() string {
	if d.PartnerAuthToken != "" {
		return d.PartnerAuthToken
	}
	return d.AccessToken
}

type assignedPartnerDTO struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

type addressDTO struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Line1      string `json:"addressLine1"`
	Line2      string `json:"addressLine2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

type itemDTO struct {
	ID          string  `json:"_id"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	TotalPrice  float64 `json:"totalPrice"`
	SKU         string  `json:"sku"`
	ColorName   string  `json:"colorName"`
	SizeName    string  `json:"sizeName"`
	ImageURL    string  `json:"imageUrl"`
}

type orderDTO struct {
	ID                string              `json:"_id"`
	Status            string              `json:"orderStatus"`
	AssignedPartnerID string              `json:"assignedPartnerId"`
	AssignedPartner   *assignedPartnerDTO `json:"assignedPartner"`
	ShippingAddress addressDTO          `json:"shippingAddress"`
	Items           []itemDTO           `json:"items"`
	TotalAmount     float64             `json:"totalAmount"`
	Subtotal        float64             `json:"subtotal"`
	ShippingFee     float64             `json:"shippingFee"`
	DiscountAmount  float64             `json:"discountAmount"`
	PaymentMethod   string              `json:"paymentMethod"`
	PaymentStatus   string              `json:"paymentStatus"`
	CouponCode      string              `json:"couponCode"`
	CreatedAt       time.Time           `json:"createdAt"`
}

func (d orderDTO) toDomain() (*order.Order, error) {
	id, err := kernel.NewRemoteID(d.ID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(d.Status)
	if err != nil {
		return nil, err
	}

	// The platform carries the claim twice: assignedPartnerId as its own
	// field and assignedPartner as a populated summary object. Either may
	// be absent, so assignment is derived from whichever is present.
	claimantRef := d.AssignedPartnerID
	if claimantRef == "" && d.AssignedPartner != nil {
		claimantRef = d.AssignedPartner.ID
	}

	var assignedID *kernel.RemoteID
	if claimantRef != "" {
		claimantID, idErr := kernel.NewRemoteID(claimantRef)
		if idErr != nil {
			return nil, idErr
		}
		assignedID = &claimantID
	}

	var summary *order.PartnerSummary
	if d.AssignedPartner != nil {
		s := order.NewPartnerSummary(d.AssignedPartner.FullName, d.AssignedPartner.Email)
		summary = &s
	}

	address, err := order.NewAddress(
		d.ShippingAddress.Name,
		d.ShippingAddress.Phone,
		d.ShippingAddress.Line1,
		d.ShippingAddress.Line2,
		d.ShippingAddress.City,
		d.ShippingAddress.State,
		d.ShippingAddress.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	charges, err := order.NewCharges(d.TotalAmount, d.Subtotal, d.ShippingFee, d.DiscountAmount)
	if err != nil {
		return nil, err
	}

	payment, err := order.NewPayment(d.PaymentMethod, d.PaymentStatus, d.CouponCode)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(d.Items))
	for i, itemData := range d.Items {
		itemID, itemErr := kernel.NewRemoteID(itemData.ID)
		if itemErr != nil {
			return nil, fmt.Errorf("item %d: %w", i, itemErr)
		}

		item, itemErr := order.RestoreItem(
			itemID,
			itemData.ProductName,
			itemData.Quantity,
			itemData.UnitPrice,
			itemData.TotalPrice,
			itemData.SKU,
			itemData.ColorName,
			itemData.SizeName,
			itemData.ImageURL,
		)
		if itemErr != nil {
			return nil, fmt.Errorf("item %d: %w", i, itemErr)
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, status, assignedID, summary, address, charges, payment, d.CreatedAt, items,
	)
}

// dashboardDTO is the platform's rollup for GET /dashboard/partner.
type dashboardDTO struct {
	Orders struct {
		Assigned        int `json:"assigned"`
		Completed       int `json:"completed"`
		Pending         int `json:"pending"`
		Cancelled       int `json:"cancelled"`
		ReturnRequested int `json:"returnRequested"`
	} `json:"orders"`
	Revenue struct {
		AssignedValue   float64 `json:"assignedValue"`
		CompletedValue  float64 `json:"completedValue"`
		InProgressValue float64 `json:"inProgressValue"`
		OutstandingCOD  float64 `json:"outstandingCod"`
	} `json:"revenue"`
}

func (d dashboardDTO) toDomain() *ports.PartnerDashboard {
	return &ports.PartnerDashboard{
		Orders: ports.DashboardOrders{
			Assigned:        d.Orders.Assigned,
			Completed:       d.Orders.Completed,
			Pending:         d.Orders.Pending,
			Cancelled:       d.Orders.Cancelled,
			ReturnRequested: d.Orders.ReturnRequested,
		},
		Revenue: ports.DashboardRevenue{
			AssignedValue:   d.Revenue.AssignedValue,
			CompletedValue:  d.Revenue.CompletedValue,
			InProgressValue: d.Revenue.InProgressValue,
			OutstandingCOD:  d.Revenue.OutstandingCOD,
		},
	}
}
