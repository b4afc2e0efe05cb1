package database

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Queryable is the subset of sqlx functionality that is common to both
// a plain DB handle and an open transaction. Store methods accept this
// type so they compose inside or outside of a WrapTx boundary.
type Queryable interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	NamedExec(query string, arg interface{}) (sql.Result, error)
	Get(dest interface{}, query string, args ...interface{}) error
	Select(dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

// JsonColumn wraps an arbitrary serializable type such that sqlx can
// scan a jsonb column directly in to it (and write it back out).
type JsonColumn[T any] struct {
	val *T
}

func NewJsonColumn[T any](val *T) JsonColumn[T] {
	return JsonColumn[T]{val: val}
}

func (j *JsonColumn[T]) Scan(src any) error {
	if src == nil {
		j.val = nil
		return nil
	}

	srcBytes, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T in to JsonColumn", src)
	}

	v := new(T)
	if err := json.Unmarshal(srcBytes, v); err != nil {
		return err
	}

	j.val = v
	return nil
}

func (j JsonColumn[T]) Value() (driver.Value, error) {
	if j.val == nil {
		return nil, nil
	}

	return json.Marshal(j.val)
}

// Get returns the contained value, which is nil when the
// underlying column was NULL.
func (j *JsonColumn[T]) Get() *T {
	return j.val
}
