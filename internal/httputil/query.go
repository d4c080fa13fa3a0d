package httputil

import (
	"net/url"
	"reflect"
)

// GetURLFields returns the names of the filter fields that are set in the
// query string of the URL.
//
// queryFields can be passed to gorm's Where as field selection, setFields
// also contains fields tagged with filterField:"false" that need explicit
// handling, e.g. fuzzy matching.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i).Name
		param := val.Type().Field(i).Tag.Get("form")

		// filterField marks fields that are processed by explicit logic
		// instead of being used in the Where statement
		filterField := val.Type().Field(i).Tag.Get("filterField")

		if url.Query().Has(param) {
			setFields = append(setFields, field)

			if filterField != "false" {
				queryFields = append(queryFields, field)
			}
		}
	}
	return queryFields, setFields
}
