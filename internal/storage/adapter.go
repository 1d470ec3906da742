// Package storage is the serialization boundary between the account service
// and a durable key/value backend.
//
// The adapter owns no state of its own: every call goes straight to the
// backend. Reads are lenient: a backend read error or bytes that do not
// decode are logged and reported as absent, so a damaged store never stops
// the program from starting.
package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/dmitrijs2005/gymkeeper/internal/logging"
	"github.com/dmitrijs2005/gymkeeper/internal/storage/kv"
)

// Keys the account service persists under.
const (
	KeyUsers   = "gym_users"
	KeySession = "gym_current_user"
)

type Adapter struct {
	repo kv.Repository
	log  logging.Logger
}

func NewAdapter(repo kv.Repository, log logging.Logger) *Adapter {
	return &Adapter{repo: repo, log: log}
}

// Load returns the bytes stored under key, or nil when absent or unreadable.
func (a *Adapter) Load(ctx context.Context, key string) []byte {
	value, err := a.repo.Get(ctx, key)
	if err != nil {
		a.log.Warn(ctx, "store read failed, treating as absent", "key", key, "error", err)
		return nil
	}
	return value
}

func (a *Adapter) Save(ctx context.Context, key string, value []byte) error {
	if err := a.repo.Set(ctx, key, value); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Remove deletes keys in one atomic step.
func (a *Adapter) Remove(ctx context.Context, keys ...string) error {
	if err := a.repo.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("remove %v: %w", keys, err)
	}
	return nil
}

// LoadJSON decodes the value under key into dst. It reports false when the
// key is absent or its contents are not valid JSON for dst; dst is left
// untouched in that case.
func (a *Adapter) LoadJSON(ctx context.Context, key string, dst any) bool {
	raw := a.Load(ctx, key)
	if raw == nil {
		return false
	}
	if err := decodeInto(raw, dst); err != nil {
		a.log.Warn(ctx, "corrupt store data, treating as absent", "key", key, "error", err)
		return false
	}
	return true
}

func (a *Adapter) SaveJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return a.Save(ctx, key, raw)
}

// decodeInto unmarshals into a fresh value of dst's type and only then
// copies it over, so a partial decode never leaks into dst. dst must be a
// non-nil pointer.
func decodeInto(raw []byte, dst any) error {
	target := reflect.ValueOf(dst)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("decode target must be a non-nil pointer, got %T", dst)
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return errors.New("null value")
	}

	fresh := reflect.New(target.Elem().Type())
	if err := json.Unmarshal(raw, fresh.Interface()); err != nil {
		return err
	}
	target.Elem().Set(fresh.Elem())
	return nil
}
