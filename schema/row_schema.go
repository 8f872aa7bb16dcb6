// Package schema derives the tabular shape of result rows from their Go
// struct definition, keeping the output column contract in one place.
package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// Columns returns the column names of a row struct in field declaration
// order. The json tag is used when present, otherwise the field name is
// snake-cased.
func Columns(row any) []string {
	t := reflect.TypeOf(row)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var columns []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		columns = append(columns, columnName(f))
	}
	return columns
}

// Values returns the row's field values rendered as strings, aligned with
// Columns.
func Values(row any) []string {
	v := reflect.ValueOf(row)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	t := v.Type()

	var values []string
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		values = append(values, fmt.Sprintf("%v", v.Field(i).Interface()))
	}
	return values
}

func columnName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("json"); ok {
		if name := strings.Split(tag, ",")[0]; name != "" && name != "-" {
			return name
		}
	}
	return strcase.ToSnake(f.Name)
}
