package cache

import (
	"reflect"
	"transactions-client/internal/app/models"
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// BuildCacheKey returns endpoint alone when params is absent, otherwise
// endpoint@<params as JSON>. Struct params serialize in field declaration
// order and map params with sorted keys, so equal params give equal keys.
func BuildCacheKey(endpoint models.Endpoint, params interface{}) (string, error) {
	if isAbsent(params) {
		return endpoint.String(), nil
	}

	serialized, err := json.Marshal(params)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}
	return endpoint.String() + constvars.CacheKeySeparator + string(serialized), nil
}

// EndpointPrefixes turns endpoints into the key prefixes used to clear them.
func EndpointPrefixes(endpoints []models.Endpoint) []string {
	prefixes := make([]string, 0, len(endpoints))
	for _, endpoint := range endpoints {
		prefixes = append(prefixes, endpoint.String())
	}
	return prefixes
}

func isAbsent(params interface{}) bool {
	if params == nil {
		return true
	}
	value := reflect.ValueOf(params)
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return value.IsNil()
	}
	return false
}
