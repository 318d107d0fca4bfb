package codec

import "encoding/json"

// JSON uses encoding/json. Map keys are emitted sorted, struct fields in
// declaration order, so output is stable for a given type.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
