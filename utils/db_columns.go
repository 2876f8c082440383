package utils

import (
	"reflect"
)

// ColumnList returns the `db` tags of a row struct, in field order, so that the select
// list always matches what pgx.RowToStructByName expects. Embedded structs are flattened.
func ColumnList[T any]() []string {
	var zero T
	return columnsOfType(reflect.TypeOf(zero))
}

func columnsOfType(t reflect.Type) []string {
	columns := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnsOfType(field.Type)...)
			continue
		}
		tag := field.Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		columns = append(columns, tag)
	}
	return columns
}
