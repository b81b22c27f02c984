package boltdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/SscSPs/paluwagan_app/internal/apperrors"
	bolt "go.etcd.io/bbolt"
)

// Bucket names.
const (
	BucketTransactions  = "transactions"
	BucketFiscalYears   = "fiscal_years"
	BucketLinkedMembers = "linked_members"
)

// store wraps the bolt handle shared by every repository.
// bbolt runs one read-write transaction at a time, so each write below is a
// single db.Update and compare-and-set checks cannot interleave.
type store struct {
	db *bolt.DB
}

func (s *store) initBuckets() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range []string{BucketTransactions, BucketFiscalYears, BucketLinkedMembers} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
}

// view runs fn in a read-only transaction.
func (s *store) view(ctx context.Context, fn func(tx *bolt.Tx) error) error {
	return s.run(ctx, s.db.View, fn)
}

// update runs fn in a read-write transaction. Errors returned by fn pass through
// unchanged; failures of bolt itself become store errors.
func (s *store) update(ctx context.Context, fn func(tx *bolt.Tx) error) error {
	return s.run(ctx, s.db.Update, fn)
}

func (s *store) run(ctx context.Context, mode func(func(*bolt.Tx) error) error, fn func(tx *bolt.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewStoreError("request cancelled", err)
	}
	var fnErr error
	err := mode(func(tx *bolt.Tx) error {
		fnErr = fn(tx)
		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}
	if err != nil {
		return apperrors.NewStoreError("bolt transaction failed", err)
	}
	return nil
}

func bucket(tx *bolt.Tx, name string) (*bolt.Bucket, error) {
	b := tx.Bucket([]byte(name))
	if b == nil {
		return nil, apperrors.NewStoreError("bucket "+name+" not found", nil)
	}
	return b, nil
}

// getJSON decodes the value at key into v. It reports false if the key is absent.
func getJSON(b *bolt.Bucket, key string, v any) (bool, error) {
	data := b.Get([]byte(key))
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, apperrors.NewStoreError("failed to decode record "+key, err)
	}
	return true, nil
}

func putJSON(b *bolt.Bucket, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return apperrors.NewStoreError("failed to encode record "+key, err)
	}
	if err := b.Put([]byte(key), data); err != nil {
		return apperrors.NewStoreError("failed to write record "+key, err)
	}
	return nil
}

// forEachJSON decodes every value under prefix, in key order, and hands it to fn.
// An empty prefix walks the whole bucket.
func forEachJSON[T any](b *bolt.Bucket, prefix []byte, fn func(key []byte, v T) error) error {
	c := b.Cursor()
	var k, data []byte
	if len(prefix) == 0 {
		k, data = c.First()
	} else {
		k, data = c.Seek(prefix)
	}
	for ; k != nil; k, data = c.Next() {
		if len(prefix) > 0 && !bytes.HasPrefix(k, prefix) {
			break
		}
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return apperrors.NewStoreError("failed to decode record "+string(k), err)
		}
		if err := fn(k, v); err != nil {
			return err
		}
	}
	return nil
}
