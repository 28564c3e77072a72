package utils

import (
	"fmt"
	"reflect"
	"slices"
)

var ColumnTag = "db"

// StructTagValues lists the column names of a record, skipping untagged and "-" fields.
func StructTagValues(input any, omit ...string) []string {
	targetValue := structValue(input)
	targetType := targetValue.Type()

	result := make([]string, 0, targetValue.NumField())

	for i := 0; i < targetValue.NumField(); i++ {
		if targetType.Field(i).PkgPath != "" {
			continue
		}

		tagValue := targetType.Field(i).Tag.Get(ColumnTag)
		if tagValue == "" || tagValue == "-" || slices.Contains(omit, tagValue) {
			continue
		}

		result = append(result, tagValue)
	}

	return result
}

// StructToMap maps column name to field value for use with squirrel SetMap.
func StructToMap(input any, omit ...string) map[string]any {
	itemValue := structValue(input)
	itemType := itemValue.Type()

	result := make(map[string]any)

	for i := 0; i < itemValue.NumField(); i++ {
		if itemType.Field(i).PkgPath != "" {
			continue
		}

		tagValue := itemType.Field(i).Tag.Get(ColumnTag)
		if tagValue == "" || tagValue == "-" || slices.Contains(omit, tagValue) {
			continue
		}

		result[tagValue] = itemValue.Field(i).Interface()
	}

	return result
}

func structValue(input any) reflect.Value {
	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		panic("input must be a pointer to a struct or a struct")
	}

	return v
}

func ErrorWrapOrNil(err error, msg string) error {
	if err == nil {
		return nil
	}

	if msg == "" {
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)
}
