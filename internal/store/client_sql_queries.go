// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable         = "kv_store"
	kvColumnKey     = "store_key"
	kvColumnValue   = "value"
	kvColumnUpdated = "updated_at"

	kvUpsertSuffix = "ON CONFLICT(" + kvColumnKey + ") DO UPDATE SET " +
		kvColumnValue + " = excluded." + kvColumnValue + ", " +
		kvColumnUpdated + " = excluded." + kvColumnUpdated
)

// SQLite uses "?" placeholders, which is squirrel's default format.
var kvBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetValueQuery(key string) (string, []any, error) {
	return kvBuilder.
		Select(kvColumnValue).
		From(kvTable).
		Where(sq.Eq{kvColumnKey: key}).
		ToSql()
}

func buildPutValueQuery(key string, value []byte, now time.Time) (string, []any, error) {
	return kvBuilder.
		Insert(kvTable).
		Columns(kvColumnKey, kvColumnValue, kvColumnUpdated).
		Values(key, value, now.UTC()).
		Suffix(kvUpsertSuffix).
		ToSql()
}

func buildDeleteValueQuery(key string) (string, []any, error) {
	return kvBuilder.
		Delete(kvTable).
		Where(sq.Eq{kvColumnKey: key}).
		ToSql()
}

func buildExistsQuery(key string) (string, []any, error) {
	return kvBuilder.
		Select("COUNT(1)").
		From(kvTable).
		Where(sq.Eq{kvColumnKey: key}).
		ToSql()
}
