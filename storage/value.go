package storage

import (
	"context"
	"errors"
	"math"

	"github.com/viant/drainly/codec"
)

// Encodable is anything that can append its compact encoding to an encoder.
type Encodable interface {
	EncodeTo(enc *codec.Encoder)
}

// Decodable is anything that can replace its state from a decoder.
type Decodable interface {
	DecodeFrom(dec *codec.Decoder) error
}

// LengthPrefixed is declared by containers whose encoding is exactly a
// compact element count followed by the element encodings, in queue order,
// with no header or trailer of any kind.  Append and Len are only sound for
// such containers, so Value demands the declaration at compile time.
// Containers that do not match this layout must not declare it.
type LengthPrefixed interface {
	LengthPrefixedEncoding()
}

// Container combines what Value requires from a stored container pointer.
type Container[E any] interface {
	*E
	Encodable
	Decodable
	LengthPrefixed
}

// Value binds one stored container to a key in a Store.
type Value[E any, PE Container[E]] struct {
	store Store
	key   string
}

// NewValue returns a value bound to key in store.
func NewValue[E any, PE Container[E]](store Store, key string) *Value[E, PE] {
	return &Value[E, PE]{store: store, key: key}
}

// Load decodes the stored bytes into target.  A missing key leaves target
// untouched, which for a freshly constructed container means empty.
func (v *Value[E, PE]) Load(ctx context.Context, target PE) error {
	data, err := v.store.Get(ctx, v.key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return target.DecodeFrom(codec.NewDecoder(data))
}

// Save encodes source and stores it under the bound key.
func (v *Value[E, PE]) Save(ctx context.Context, source PE) error {
	enc := codec.NewEncoder()
	source.EncodeTo(enc)
	return v.store.Put(ctx, v.key, enc.Data())
}

// Mutate loads the container, applies fn and persists the result.  This is
// the host idiom for an execution turn: load, drain, store.
func (v *Value[E, PE]) Mutate(ctx context.Context, target PE, fn func(PE)) error {
	if err := v.Load(ctx, target); err != nil {
		return err
	}
	fn(target)
	return v.Save(ctx, target)
}

// Append splices one encoded element into the stored form without decoding
// the existing elements: only the count prefix is re-read and re-emitted,
// the original element bytes are carried over untouched.  A missing key is
// treated as the empty container.
func (v *Value[E, PE]) Append(ctx context.Context, element Encodable) error {
	data, err := v.store.Get(ctx, v.key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	next, err := appendEncoded(data, element)
	if err != nil {
		return err
	}
	return v.store.Put(ctx, v.key, next)
}

// Len decodes only the count prefix of the stored form.  A missing key
// reports an empty container; a corrupt prefix surfaces the codec error
// unchanged.
func (v *Value[E, PE]) Len(ctx context.Context) (int, error) {
	data, err := v.store.Get(ctx, v.key)
	if errors.Is(err, ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return DecodeLength(data)
}

// Delete removes the stored container.
func (v *Value[E, PE]) Delete(ctx context.Context) error {
	return v.store.Delete(ctx, v.key)
}

// DecodeLength reads the element count of an encoded length-prefixed
// container without touching any element bytes.
func DecodeLength(data []byte) (int, error) {
	count, err := codec.NewDecoder(data).Uvarint()
	if err != nil {
		return 0, err
	}
	if count > math.MaxInt {
		return 0, codec.ErrOverflow
	}
	return int(count), nil
}

func appendEncoded(existing []byte, element Encodable) ([]byte, error) {
	var count uint64
	var tail []byte
	if len(existing) > 0 {
		dec := codec.NewDecoder(existing)
		n, err := dec.Uvarint()
		if err != nil {
			return nil, err
		}
		count = n
		tail = existing[dec.Offset():]
	}

	enc := codec.NewEncoder()
	enc.Uvarint(count + 1)
	enc.Raw(tail)
	element.EncodeTo(enc)
	return enc.Data(), nil
}
