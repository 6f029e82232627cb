package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an INSERT from the exported db-tagged fields of model. Fields
// tagged `db:"col,omitempty"` are left out while they hold their zero value, so the
// column falls back to its table default.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	cols, vals, err := columnsAndValuesFromModel(model)
	if err != nil {
		return "", nil, err
	}
	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}

type modelColumn struct {
	name      string
	omitEmpty bool
}

func parseColumnTag(tag string) (modelColumn, bool) {
	parts := strings.Split(strings.TrimSpace(tag), ",")
	name := strings.TrimSpace(parts[0])
	if name == "" || name == "-" {
		return modelColumn{}, false
	}
	col := modelColumn{name: name}
	for _, opt := range parts[1:] {
		if strings.TrimSpace(opt) == "omitempty" {
			col.omitEmpty = true
		}
	}
	return col, true
}

func columnsAndValuesFromModel(model any) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		col, ok := parseColumnTag(field.Tag.Get("db"))
		if !ok {
			continue
		}
		fieldValue := value.Field(i)
		if col.omitEmpty && fieldValue.IsZero() {
			continue
		}
		cols = append(cols, col.name)
		vals = append(vals, fieldValue.Interface())
	}

	if len(cols) == 0 {
		return nil, nil, fmt.Errorf("model %s has no db columns", typ.Name())
	}
	return cols, vals, nil
}
