// Package queries contains read operations over the unit catalog and packages.
// Queries never change state; their handlers return plain response structs.
package queries

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var (
	ErrConvertQuantityQueryIsNotConstructed = errors.New(
		"ConvertQuantityQuery must be created via NewConvertQuantityQuery constructor",
	)
)

// ConvertQuantityQuery converts an amount between two named units.
//
// Example:
//
//	query, err := NewConvertQuantityQuery(12, "inches", "cm")
//	if err != nil {
//	    return fmt.Errorf("invalid conversion: %w", err)
//	}
//
//	res, err := handler.Handle(ctx, query)
//	fmt.Printf("%g %s\n", res.Amount, res.To) // 30.48 centimetre
type ConvertQuantityQuery struct {
	amount float64
	from   string
	to     string

	guard guard.ConstructorGuard
}

// NewConvertQuantityQuery creates a conversion query.
// Unit names are resolved by the handler, so aliases are accepted.
func NewConvertQuantityQuery(amount float64, from, to string) (ConvertQuantityQuery, error) {
	q := ConvertQuantityQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setAmount(amount),
		q.setFrom(from),
		q.setTo(to),
	); err != nil {
		return ConvertQuantityQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ConvertQuantityQuery) Validate() error {
	return q.guard.Validate(ErrConvertQuantityQueryIsNotConstructed)
}

// Amount returns the amount in the source unit.
func (q ConvertQuantityQuery) Amount() float64 {
	return q.amount
}

// From returns the source unit name.
func (q ConvertQuantityQuery) From() string {
	return q.from
}

// To returns the target unit name.
func (q ConvertQuantityQuery) To() string {
	return q.to
}

func (q *ConvertQuantityQuery) setAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%v is not a finite number", amount))
	}

	q.amount = amount
	return nil
}

func (q *ConvertQuantityQuery) setFrom(from string) error {
	from = strings.TrimSpace(from)
	if from == "" {
		return errs.NewValueIsRequiredError("from")
	}

	q.from = from
	return nil
}

func (q *ConvertQuantityQuery) setTo(to string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return errs.NewValueIsRequiredError("to")
	}

	q.to = to
	return nil
}

// ConvertQuantityQueryResponse is the converted amount with the canonical unit names.
type ConvertQuantityQueryResponse struct {
	Amount    float64
	From      string
	Converted float64
	To        string
	Rate      float64
	Kind      string
}
