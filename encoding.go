package bigmoney

import (
	"database/sql/driver"
	"fmt"
	"math/big"
)

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// Both quoted and unquoted amounts are accepted, null leaves the amount
// unchanged.
// See also constructor [ParseAmount].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*a, err = ParseAmount(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is always written as a JSON string to preserve its precision.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	s := a.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseAmount].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	var err error
	*a, err = ParseAmount(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Amount.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// Strings must follow the format accepted by [ParseAmount],
// integers are interpreted as cents, like in [NewAmountFromBigInt],
// and floats are converted with [NewAmountFromFloat64].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (a *Amount) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*a, err = ParseAmount(value)
	case []byte:
		*a, err = ParseAmount(string(value))
	case int64:
		*a = newAmount(big.NewInt(value))
	case float64:
		*a, err = NewAmountFromFloat64(value)
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Amount{}, NullAmount{}, Amount{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Amount{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The amount is stored as a string to preserve its precision.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (a Amount) Value() (driver.Value, error) {
	return a.String(), nil
}

// NullAmount represents an amount that can be null.
// Its zero value is null.
// NullAmount is not thread-safe.
type NullAmount struct {
	Amount Amount
	Valid  bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Amount.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullAmount) Scan(value any) error {
	if value == nil {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	if err := n.Amount.Scan(value); err != nil {
		n.Amount = Amount{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// Value implements the [driver.Valuer] interface.
// See also method [Amount.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullAmount) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Amount.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Amount.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullAmount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Amount = Amount{}
		n.Valid = false
		return nil
	}
	if err := n.Amount.UnmarshalJSON(text); err != nil {
		n.Amount = Amount{}
		n.Valid = false
		return err
	}
	n.Valid = true
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Amount.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullAmount) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Amount.MarshalJSON()
}
