package types

import (
	"encoding/json"
	"fmt"

	collcodec "cosmossdk.io/collections/codec"
)

// JSONValue returns a collections value codec that stores V as JSON. The
// module carries no generated protobuf types, so all struct-valued
// collections use this codec.
func JSONValue[V any](name string) collcodec.ValueCodec[V] {
	return jsonValue[V]{name: name}
}

type jsonValue[V any] struct {
	name string
}

func (c jsonValue[V]) Encode(value V) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[V]) Decode(b []byte) (V, error) {
	var value V
	if err := json.Unmarshal(b, &value); err != nil {
		var zero V
		return zero, fmt.Errorf("failed to decode %s value: %w", c.name, err)
	}
	return value, nil
}

func (c jsonValue[V]) EncodeJSON(value V) ([]byte, error) {
	return json.Marshal(value)
}

func (c jsonValue[V]) DecodeJSON(b []byte) (V, error) {
	return c.Decode(b)
}

func (c jsonValue[V]) Stringify(value V) string {
	bz, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bz)
}

func (c jsonValue[V]) ValueType() string {
	return c.name
}
