// Package calculator implements the GST figures shown by the site's tax calculator.
package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount   = errors.New("amount must be a non-negative number")
	ErrUnsupportedRate = errors.New("unsupported GST rate")
)

// SupportedRates are the GST slabs, in percent
var SupportedRates = []string{"0", "0.25", "3", "5", "12", "18", "28"}

var hundred = decimal.NewFromInt(100)

// Request is one calculation. Amount is net of tax unless Inclusive is set.
type Request struct {
	Amount     decimal.Decimal `json:"amount"`
	Rate       decimal.Decimal `json:"rate"`
	Inclusive  bool            `json:"inclusive"`
	InterState bool            `json:"interState"`
}

// Result is rounded to paise
type Result struct {
	BaseAmount  decimal.Decimal `json:"baseAmount"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	CGST        decimal.Decimal `json:"cgst"`
	SGST        decimal.Decimal `json:"sgst"`
	IGST        decimal.Decimal `json:"igst"`
	Rate        decimal.Decimal `json:"rate"`
	Inclusive   bool            `json:"inclusive"`
	InterState  bool            `json:"interState"`
}

// IsSupportedRate reports whether rate is one of SupportedRates
func IsSupportedRate(rate decimal.Decimal) bool {
	for _, r := range SupportedRates {
		if decimal.RequireFromString(r).Equal(rate) {
			return true
		}
	}
	return false
}

// Calculate splits an amount into base and tax.
// Intra-state tax is halved into CGST and SGST; inter-state tax is IGST.
func Calculate(req Request) (Result, error) {
	if req.Amount.IsNegative() {
		return Result{}, ErrInvalidAmount
	}
	if !IsSupportedRate(req.Rate) {
		return Result{}, fmt.Errorf("%w: %s", ErrUnsupportedRate, req.Rate.String())
	}

	var base, tax, total decimal.Decimal
	if req.Inclusive {
		total = req.Amount.Round(2)
		base = req.Amount.Mul(hundred).Div(hundred.Add(req.Rate)).Round(2)
		tax = total.Sub(base)
	} else {
		base = req.Amount.Round(2)
		tax = req.Amount.Mul(req.Rate).Div(hundred).Round(2)
		total = base.Add(tax)
	}

	res := Result{
		BaseAmount:  base,
		TaxAmount:   tax,
		TotalAmount: total,
		CGST:        decimal.Zero,
		SGST:        decimal.Zero,
		IGST:        decimal.Zero,
		Rate:        req.Rate,
		Inclusive:   req.Inclusive,
		InterState:  req.InterState,
	}

	if req.InterState {
		res.IGST = tax
	} else {
		half := tax.Div(decimal.NewFromInt(2)).Round(2)
		res.CGST = half
		res.SGST = tax.Sub(half)
	}

	return res, nil
}
