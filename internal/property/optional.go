package property

import (
	"encoding/json"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// OptionalInt and OptionalNumber carry the bedrooms/bathrooms/area fields,
// where "unknown" is meaningful and distinct from zero. Input may arrive as
// a JSON number, a numeric string (HTML form values), an empty string, or
// null; empty and zero both normalize to the unset state, matching the
// write-side coercion of the original API. Unset values serialize as
// absent (omitzero / bson omitempty).

type OptionalInt struct {
	Value int
	Set   bool
}

// IsZero reports the unset state; it drives both json omitzero and bson
// omitempty (mongo-driver's Zeroer).
func (o OptionalInt) IsZero() bool { return !o.Set }

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	v, ok, err := decodeFlexNumber(data, "value must be numeric")
	if err != nil {
		return err
	}
	if !ok || v == 0 {
		*o = OptionalInt{}
		return nil
	}
	*o = OptionalInt{Value: int(v), Set: true}
	return nil
}

func (o OptionalInt) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(int32(o.Value))
}

func (o *OptionalInt) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v, ok, err := decodeBSONNumber(t, data)
	if err != nil {
		return fmt.Errorf("optional int: %w", err)
	}
	if !ok {
		*o = OptionalInt{}
		return nil
	}
	*o = OptionalInt{Value: int(v), Set: true}
	return nil
}

type OptionalNumber struct {
	Value float64
	Set   bool
}

func (o OptionalNumber) IsZero() bool { return !o.Set }

func (o OptionalNumber) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

func (o *OptionalNumber) UnmarshalJSON(data []byte) error {
	v, ok, err := decodeFlexNumber(data, "value must be numeric")
	if err != nil {
		return err
	}
	if !ok || v == 0 {
		*o = OptionalNumber{}
		return nil
	}
	*o = OptionalNumber{Value: v, Set: true}
	return nil
}

func (o OptionalNumber) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(o.Value)
}

func (o *OptionalNumber) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	v, ok, err := decodeBSONNumber(t, data)
	if err != nil {
		return fmt.Errorf("optional number: %w", err)
	}
	if !ok {
		*o = OptionalNumber{}
		return nil
	}
	*o = OptionalNumber{Value: v, Set: true}
	return nil
}

// decodeFlexNumber accepts null, a JSON number, or a numeric string.
// The second return is false when the input carries no value at all.
func decodeFlexNumber(data []byte, errMsg string) (float64, bool, error) {
	if string(data) == "null" {
		return 0, false, nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false, err
		}
		if s == "" {
			return 0, false, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false, fmt.Errorf("%s: %q", errMsg, s)
		}
		return v, true, nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return 0, false, fmt.Errorf("%s", errMsg)
	}
	return v, true, nil
}

func decodeBSONNumber(t bsontype.Type, data []byte) (float64, bool, error) {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Double:
		return rv.Double(), true, nil
	case bsontype.Int32:
		return float64(rv.Int32()), true, nil
	case bsontype.Int64:
		return float64(rv.Int64()), true, nil
	case bsontype.Null:
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("unsupported bson type %s", t)
}
