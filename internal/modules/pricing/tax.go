package pricing

// ActiveTaxes returns the currently active taxes in configured order.
func (e *Engine) ActiveTaxes() []SalesTax {
	var active []SalesTax
	for _, t := range e.taxes {
		if t.IsActive {
			active = append(active, t)
		}
	}
	return active
}

// CombinedTaxRate is the arithmetic sum of all active tax percentages. Two 5%
// taxes combine to a 10% rate applied once per taxable row, not compounded.
func (e *Engine) CombinedTaxRate() float64 {
	var rate float64
	for _, t := range e.ActiveTaxes() {
		rate += t.Amount
	}
	return rate
}

// TaxShare is one active tax's reconstructed portion of the tax total.
type TaxShare struct {
	Tax    SalesTax
	Amount float64
}

// taxBreakdown splits the tax total proportionally across active rates for
// display and compliance reporting. A zero combined rate yields zero shares.
func (e *Engine) taxBreakdown(taxTotal float64) []TaxShare {
	combined := e.CombinedTaxRate()
	active := e.ActiveTaxes()
	shares := make([]TaxShare, 0, len(active))
	for _, t := range active {
		var amount float64
		if combined != 0 {
			amount = round2(taxTotal * (t.Amount / combined))
		}
		shares = append(shares, TaxShare{Tax: t, Amount: amount})
	}
	return shares
}
