// Package textstore persists text sequences in pebble, keyed by KSUID and
// encoded with the codec record format.
package textstore

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
	"github.com/ssargent/charseq/pkg/codec"
	"github.com/ssargent/charseq/pkg/text"
)

// ErrNotFound is returned when no text exists for an id.
var ErrNotFound = errors.New("text not found")

var keyPrefix = []byte("t/")

// Store is a pebble-backed collection of texts.
type Store struct {
	db    *pebble.DB
	codec *codec.RecordCodec
}

// Open opens or creates a store in dir.
func Open(dir string) (*Store, error) {
	return OpenWithOptions(dir, &pebble.Options{})
}

// OpenWithOptions opens a store with explicit pebble options.
func OpenWithOptions(dir string, opts *pebble.Options) (*Store, error) {
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open text store at %s", dir)
	}
	return &Store{db: db, codec: codec.NewRecordCodec()}, nil
}

func key(id ksuid.KSUID) []byte {
	k := make([]byte, 0, len(keyPrefix)+len(id))
	k = append(k, keyPrefix...)
	return append(k, id.Bytes()...)
}

// Create stores s under a new id.
func (s *Store) Create(seq *text.Sequence) (ksuid.KSUID, error) {
	id := ksuid.New()
	if err := s.put(id, seq); err != nil {
		return ksuid.Nil, err
	}
	return id, nil
}

// Read returns the text stored under id.
func (s *Store) Read(id ksuid.KSUID) (*text.Sequence, error) {
	data, closer, err := s.db.Get(key(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "id %s", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", id)
	}
	defer closer.Close()

	record, err := s.codec.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", id)
	}
	if err := record.Validate(); err != nil {
		return nil, errors.Wrapf(err, "validate %s", id)
	}
	return text.FromChars(record.Units), nil
}

// Update replaces the text stored under id. The id must already exist.
func (s *Store) Update(id ksuid.KSUID, seq *text.Sequence) error {
	if _, err := s.Read(id); err != nil {
		return err
	}
	return s.put(id, seq)
}

// Delete removes the text stored under id.
func (s *Store) Delete(id ksuid.KSUID) error {
	_, closer, err := s.db.Get(key(id))
	if errors.Is(err, pebble.ErrNotFound) {
		return errors.Wrapf(ErrNotFound, "id %s", id)
	}
	if err != nil {
		return errors.Wrapf(err, "delete %s", id)
	}
	closer.Close()

	if err := s.db.Delete(key(id), pebble.NoSync); err != nil {
		return errors.Wrapf(err, "delete %s", id)
	}
	return nil
}

// List returns every stored id in ascending (creation time) order.
func (s *Store) List() ([]ksuid.KSUID, error) {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: keyPrefix,
		UpperBound: []byte{keyPrefix[0], keyPrefix[1] + 1},
	})
	if err != nil {
		return nil, errors.Wrap(err, "list texts")
	}

	var ids []ksuid.KSUID
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key()[len(keyPrefix):])
		if err != nil {
			iter.Close()
			return nil, errors.Wrapf(err, "bad key %x", iter.Key())
		}
		ids = append(ids, id)
	}
	if err := iter.Close(); err != nil {
		return nil, errors.Wrap(err, "list texts")
	}
	return ids, nil
}

// Count returns the number of stored texts.
func (s *Store) Count() (int, error) {
	ids, err := s.List()
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// Close flushes and closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) put(id ksuid.KSUID, seq *text.Sequence) error {
	if seq == nil {
		return errors.Wrap(codec.ErrNullReference, "text is nil")
	}
	data, err := s.codec.Encode(seq.ToCharArray())
	if err != nil {
		return errors.Wrapf(err, "encode %s", id)
	}
	if err := s.db.Set(key(id), data, pebble.NoSync); err != nil {
		return errors.Wrapf(err, "write %s", id)
	}
	return nil
}
