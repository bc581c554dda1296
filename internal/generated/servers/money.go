package servers

import (
	"encoding/json"
	"errors"
)

var errMoneyType = errors.New("money must be a JSON number or string")

// Money is a JSON number or string. With a decimal point it is in major units,
// without one it is already in minor units.
//
// The schema is excluded from code generation so that a number keeps its literal.
type Money string

// UnmarshalJSON keeps the literal of a number so that its decimal point survives.
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*m = Money(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errMoneyType
	}
	*m = Money(n.String())
	return nil
}

// MarshalJSON implements json.Marshaler.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(m))
}
