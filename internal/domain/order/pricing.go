package order

import "github.com/shopspring/decimal"

// Reglas de precio del checkout.
var (
	// FreeShippingThreshold subtotal a partir del cual el envío es gratis (estricto >).
	FreeShippingThreshold = decimal.NewFromInt(1000)
	// ShippingFee tarifa plana de envío por debajo del umbral.
	ShippingFee = decimal.NewFromInt(100)
	// TaxRate IVA 18% sobre el subtotal.
	TaxRate = decimal.NewFromFloat(0.18)
)

// Totals totales monetarios de una orden.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals calcula envío, impuesto y total a partir del subtotal.
// total = subtotal + shipping + tax; se calcula una sola vez al crear la orden.
func ComputeTotals(subtotal decimal.Decimal) Totals {
	shipping := ShippingFee
	if subtotal.GreaterThan(FreeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
