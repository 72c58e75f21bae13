package property

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Price is an asking price that is either a number or free-form text
// ("$250k", "Contact agent"). The value is stored and served back verbatim;
// the store never parses or normalizes it.
type Price struct {
	amount  float64
	text    string
	numeric bool
	set     bool
}

// NumericPrice returns a Price holding a plain number.
func NumericPrice(v float64) Price {
	return Price{amount: v, numeric: true, set: true}
}

// TextPrice returns a Price holding free-form text.
func TextPrice(s string) Price {
	return Price{text: s, set: true}
}

// Amount returns the numeric value and whether the price is numeric.
func (p Price) Amount() (float64, bool) { return p.amount, p.numeric }

// Text returns the free-form value and whether the price is textual.
func (p Price) Text() (string, bool) { return p.text, p.set && !p.numeric }

// IsZero reports whether the price counts as missing for validation:
// never set, an empty string, or the number zero.
func (p Price) IsZero() bool {
	if !p.set {
		return true
	}
	if p.numeric {
		return p.amount == 0
	}
	return p.text == ""
}

func (p Price) String() string {
	if p.numeric {
		return strconv.FormatFloat(p.amount, 'f', -1, 64)
	}
	return p.text
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.set {
		return []byte("null"), nil
	}
	if p.numeric {
		return json.Marshal(p.amount)
	}
	return json.Marshal(p.text)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = Price{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = TextPrice(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("price must be a number or a string")
	}
	*p = NumericPrice(v)
	return nil
}

func (p Price) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if p.numeric {
		return bson.MarshalValue(p.amount)
	}
	return bson.MarshalValue(p.text)
}

func (p *Price) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		*p = NumericPrice(rv.Double())
	case bsontype.Int32:
		*p = NumericPrice(float64(rv.Int32()))
	case bsontype.Int64:
		*p = NumericPrice(float64(rv.Int64()))
	case bsontype.String:
		*p = TextPrice(rv.StringValue())
	case bsontype.Null:
		*p = Price{}
	default:
		return fmt.Errorf("price: unsupported bson type %s", t)
	}
	return nil
}
