package order

import (
	"errors"
	"fmt"

	"partnerconsole/internal/core/domain/model/kernel"
	"partnerconsole/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the RestoreItem factory.
var ErrItemIsNotConstructed = errors.New("Item must be created via RestoreItem")

// Item is an immutable order line. The console never mutates line data; it
// only displays what the upstream reports.
type Item struct {
	id          kernel.RemoteID
	productName string
	quantity    int
	unitPrice   float64
	totalPrice  float64
	sku         string
	colorName   string
	sizeName    string
	imageURL    string

	isConstructed bool
}

// RestoreItem reconstructs an order line from upstream data. sku, colorName,
// sizeName and imageURL are optional. Quantity must be at least 1 and prices
// must not be negative.
func RestoreItem(
	id kernel.RemoteID,
	productName string,
	quantity int,
	unitPrice float64,
	totalPrice float64,
	sku string,
	colorName string,
	sizeName string,
	imageURL string,
) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("product name")
	}
	if quantity < 1 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	if unitPrice < 0 || totalPrice < 0 {
		return Item{}, errs.NewValueIsInvalidError("item price")
	}

	return Item{
		id:            id,
		productName:   productName,
		quantity:      quantity,
		unitPrice:     unitPrice,
		totalPrice:    totalPrice,
		sku:           sku,
		colorName:     colorName,
		sizeName:      sizeName,
		imageURL:      imageURL,
		isConstructed: true,
	}, nil
}

// Validate ensures the Item was created via RestoreItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the line's upstream identifier.
func (i Item) ID() kernel.RemoteID { return i.id }

// ProductName returns the product name.
func (i Item) ProductName() string { return i.productName }

// Quantity returns the ordered quantity.
func (i Item) Quantity() int { return i.quantity }

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() float64 { return i.unitPrice }

// TotalPrice returns the line total.
func (i Item) TotalPrice() float64 { return i.totalPrice }

// SKU returns the stock keeping unit, empty when unknown.
func (i Item) SKU() string { return i.sku }

// ColorName returns the variant color, empty when not applicable.
func (i Item) ColorName() string { return i.colorName }

// SizeName returns the variant size, empty when not applicable.
func (i Item) SizeName() string { return i.sizeName }

// ImageURL returns the product image URL, empty when unknown.
func (i Item) ImageURL() string { return i.imageURL }
