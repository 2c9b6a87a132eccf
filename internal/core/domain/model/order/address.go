package order

import (
	"errors"

	"partnerconsole/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address was not created
// through the NewAddress constructor.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress")

// Address is the delivery destination attached to an order. Name, first
// address line, city and state are mandatory; phone, second line and postal
// code are optional because the upstream does not always have them.
//
// Address is an immutable value object.
type Address struct {
	name       string
	phone      string
	line1      string
	line2      string
	city       string
	state      string
	postalCode string

	isConstructed bool
}

// NewAddress creates a validated delivery address.
func NewAddress(name, phone, line1, line2, city, state, postalCode string) (Address, error) {
	if name == "" {
		return Address{}, errs.NewValueIsRequiredError("address name")
	}
	if line1 == "" {
		return Address{}, errs.NewValueIsRequiredError("address line1")
	}
	if city == "" {
		return Address{}, errs.NewValueIsRequiredError("city")
	}
	if state == "" {
		return Address{}, errs.NewValueIsRequiredError("state")
	}

	return Address{
		name:          name,
		phone:         phone,
		line1:         line1,
		line2:         line2,
		city:          city,
		state:         state,
		postalCode:    postalCode,
		isConstructed: true,
	}, nil
}

// Validate ensures the Address was created via NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Name returns the recipient name.
func (a Address) Name() string { return a.name }

// Phone returns the recipient phone number, empty when unknown.
func (a Address) Phone() string { return a.phone }

// Line1 returns the first address line.
func (a Address) Line1() string { return a.line1 }

// Line2 returns the second address line, empty when unused.
func (a Address) Line2() string { return a.line2 }

// City returns the destination city.
func (a Address) City() string { return a.city }

// State returns the destination state.
func (a Address) State() string { return a.state }

// PostalCode returns the postal code, empty when unknown.
func (a Address) PostalCode() string { return a.postalCode }
