package codec

import (
	"bytes"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Msgpack is a Codec that serializes values using vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// The encoder only sorts map[string]string, map[string]bool and
// map[string]any, so Encode rewrites its output: the entries of every map,
// whatever its key and value types and however deeply nested, are ordered by
// their encoded key bytes. Equal values therefore encode to equal bytes and
// can key a history. Use `msgpack:"fieldName"` tags if you need explicit
// control over field names.
type Msgpack[V any] struct{}

func (Msgpack[V]) Encode(v V) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.GetEncoder()
	defer msgpack.PutEncoder(enc)

	enc.Reset(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return canonicalMsgpack(buf.Bytes())
}

func (Msgpack[V]) Decode(b []byte) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}

func canonicalMsgpack(b []byte) ([]byte, error) {
	dec := msgpack.GetDecoder()
	defer msgpack.PutDecoder(dec)
	dec.Reset(bytes.NewReader(b))

	var out bytes.Buffer
	if err := rewriteMsgpack(dec, msgpack.NewEncoder(&out)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

type msgpackEntry struct{ k, v []byte }

// rewriteMsgpack copies one value from d to e, recursing into arrays and
// maps. Scalars and extensions are copied as raw bytes.
func rewriteMsgpack(d *msgpack.Decoder, e *msgpack.Encoder) error {
	c, err := d.PeekCode()
	if err != nil {
		return err
	}
	switch {
	case msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32:
		n, err := d.DecodeMapLen()
		if err != nil {
			return err
		}
		ents := make([]msgpackEntry, n)
		for i := range ents {
			if ents[i].k, err = msgpackSubtree(d); err != nil {
				return err
			}
			if ents[i].v, err = msgpackSubtree(d); err != nil {
				return err
			}
		}
		slices.SortFunc(ents, func(a, b msgpackEntry) int { return bytes.Compare(a.k, b.k) })
		if err := e.EncodeMapLen(n); err != nil {
			return err
		}
		for _, en := range ents {
			if err := e.Encode(msgpack.RawMessage(en.k)); err != nil {
				return err
			}
			if err := e.Encode(msgpack.RawMessage(en.v)); err != nil {
				return err
			}
		}
		return nil
	case msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32:
		n, err := d.DecodeArrayLen()
		if err != nil {
			return err
		}
		if err := e.EncodeArrayLen(n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := rewriteMsgpack(d, e); err != nil {
				return err
			}
		}
		return nil
	default:
		raw, err := d.DecodeRaw()
		if err != nil {
			return err
		}
		return e.Encode(raw)
	}
}

func msgpackSubtree(d *msgpack.Decoder) ([]byte, error) {
	var buf bytes.Buffer
	if err := rewriteMsgpack(d, msgpack.NewEncoder(&buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
