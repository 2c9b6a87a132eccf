package order

import (
	"errors"

	"partnerconsole/internal/pkg/errs"
)

var (
	// ErrChargesAreNotConstructed is returned when a Charges value was not
	// created through NewCharges.
	ErrChargesAreNotConstructed = errors.New("Charges must be created via NewCharges")

	// ErrPaymentIsNotConstructed is returned when a Payment value was not
	// created through NewPayment.
	ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment")
)

// Charges groups the monetary amounts of an order. All amounts come from the
// upstream and are never recomputed locally.
type Charges struct {
	total          float64
	subtotal       float64
	shippingFee    float64
	discountAmount float64

	isConstructed bool
}

// NewCharges creates a validated set of order amounts. Negative amounts are
// rejected; a zero discount means no discount was applied.
func NewCharges(total, subtotal, shippingFee, discountAmount float64) (Charges, error) {
	if total < 0 || subtotal < 0 || shippingFee < 0 || discountAmount < 0 {
		return Charges{}, errs.NewValueIsInvalidError("order amounts")
	}

	return Charges{
		total:          total,
		subtotal:       subtotal,
		shippingFee:    shippingFee,
		discountAmount: discountAmount,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Charges value was created via NewCharges.
func (c Charges) Validate() error {
	if !c.isConstructed {
		return ErrChargesAreNotConstructed
	}
	return nil
}

// Total returns the grand total payable.
func (c Charges) Total() float64 { return c.total }

// Subtotal returns the item subtotal before fees and discounts.
func (c Charges) Subtotal() float64 { return c.subtotal }

// ShippingFee returns the shipping fee.
func (c Charges) ShippingFee() float64 { return c.shippingFee }

// DiscountAmount returns the applied discount, zero when none.
func (c Charges) DiscountAmount() float64 { return c.discountAmount }

// Payment groups the payment details of an order.
type Payment struct {
	method     string
	status     string
	couponCode string

	isConstructed bool
}

// NewPayment creates validated payment details. couponCode is optional.
func NewPayment(method, status, couponCode string) (Payment, error) {
	if method == "" {
		return Payment{}, errs.NewValueIsRequiredError("payment method")
	}
	if status == "" {
		return Payment{}, errs.NewValueIsRequiredError("payment status")
	}

	return Payment{
		method:        method,
		status:        status,
		couponCode:    couponCode,
		isConstructed: true,
	}, nil
}

// Validate ensures the Payment value was created via NewPayment.
func (p Payment) Validate() error {
	if !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// Method returns the payment method, for example "COD".
func (p Payment) Method() string { return p.method }

// Status returns the upstream payment status.
func (p Payment) Status() string { return p.status }

// CouponCode returns the applied coupon code, empty when none.
func (p Payment) CouponCode() string { return p.couponCode }
