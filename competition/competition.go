// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package competition

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Feature is one trust indicator shown under the form
type Feature struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Competition is the static content of the current prize draw
type Competition struct {
	Brand             string          `json:"brand"`
	PrizeName         string          `json:"prize_name"`
	PrizeValue        decimal.Decimal `json:"prize_value"`
	EntryFee          decimal.Decimal `json:"entry_fee"`
	CurrencySymbol    string          `json:"currency_symbol"`
	CurrencyCode      string          `json:"currency_code"`
	SkillQuestion     string          `json:"skill_question"`
	AnswerPlaceholder string          `json:"answer_placeholder"`
	Hint              string          `json:"hint"`
	Features          []Feature       `json:"features"`
	Disclaimer        string          `json:"disclaimer"`
}

// Default returns the paddleboard draw
func Default() Competition {
	return Competition{
		Brand:             "Leisure Luck",
		PrizeName:         "Premium Paddleboard",
		PrizeValue:        decimal.NewFromInt(500),
		EntryFee:          decimal.NewFromInt(2),
		CurrencySymbol:    "£",
		CurrencyCode:      "GBP",
		SkillQuestion:     "In what year was the paddleboard invented?",
		AnswerPlaceholder: "Enter the year (e.g., 1960)",
		Hint:              "Think about when surfing culture really took off",
		Features: []Feature{
			{Title: "100% Legal", Text: "Skill-based competition compliant with UK gambling laws"},
			{Title: "Secure Payments", Text: "All payments processed securely through Stripe"},
			{Title: "Real Prizes", Text: "Genuine high-quality prizes delivered to winners"},
		},
		Disclaimer: "This is a skill-based competition and not gambling. Must be 18+ to enter. Terms & conditions apply.",
	}
}

// FeeLabel formats the entry fee with pence, e.g. "£2.00"
func (c Competition) FeeLabel() string {
	return c.CurrencySymbol + humanize.FormatFloat("#,###.##", c.EntryFee.InexactFloat64())
}

// ShortFeeLabel drops the pence when the fee is whole, e.g. "£2"
func (c Competition) ShortFeeLabel() string {
	if c.EntryFee.IsInteger() {
		return c.CurrencySymbol + humanize.Comma(c.EntryFee.IntPart())
	}
	return c.FeeLabel()
}

// PrizeLabel formats the prize value as a lower bound, e.g. "£500+"
func (c Competition) PrizeLabel() string {
	return c.CurrencySymbol + humanize.Comma(c.PrizeValue.IntPart()) + "+"
}

func (c Competition) SubmitLabel() string {
	return "Submit Entry & Pay " + c.ShortFeeLabel()
}

func (c Competition) Tagline() string {
	return fmt.Sprintf("Enter our skill-based competition for just %s and you could win a top-of-the-range paddleboard worth %s",
		c.ShortFeeLabel(), c.PrizeLabel())
}

// Validate rejects amounts a checkout could not charge
func (c Competition) Validate() error {
	if !c.EntryFee.IsPositive() {
		return fmt.Errorf("entry fee must be positive, got %s", c.EntryFee)
	}
	if !c.EntryFee.Equal(c.EntryFee.Round(2)) {
		return fmt.Errorf("entry fee %s has more than two decimal places", c.EntryFee)
	}
	if c.PrizeValue.IsNegative() {
		return fmt.Errorf("prize value must not be negative, got %s", c.PrizeValue)
	}
	return nil
}
