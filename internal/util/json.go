package util

import (
	"encoding/json"
	"errors"
	"reflect"
)

// SerializeToJSONString serializes v to a JSON string.
func SerializeToJSONString(v any) (string, error) {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(jsonBytes), nil
}

// DeserializeFromJSONString deserializes jsonString into v, which must be a
// non-nil pointer.
func DeserializeFromJSONString(jsonString string, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New("input must be a non-nil pointer")
	}
	return json.Unmarshal([]byte(jsonString), v)
}
