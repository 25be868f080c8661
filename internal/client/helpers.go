package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	internalhttp "github.com/siampay/siampay-go/internal/http"
	"github.com/siampay/siampay-go/pkg/siampay"
)

// encodeFields flattens a field mapping into a form-encoded payload.
func encodeFields(fields map[string]any) url.Values {
	values := url.Values{}
	for key, value := range fields {
		values.Set(key, formatValue(value))
	}

	return values
}

func formatValue(value any) string {
	switch typed := value.(type) {
	case string:
		return typed
	case bool:
		return strconv.FormatBool(typed)
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprint(typed)
	}
}

// decodeObject parses a response body into a raw field mapping.
func decodeObject(resp *internalhttp.Response) (map[string]any, error) {
	var data map[string]any

	err := json.Unmarshal(resp.Body, &data)
	if err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}

	return data, nil
}

// materializeResource decodes a response and converts it to the expected
// concrete kind.
func materializeResource[T siampay.Resource](resp *internalhttp.Response) (T, error) {
	var zero T

	data, err := decodeObject(resp)
	if err != nil {
		return zero, err
	}

	resource, ok := siampay.Materialize(data).(T)
	if !ok {
		kind, _ := data["object"].(string)

		return zero, fmt.Errorf("%w: %q", siampay.ErrUnexpectedObject, kind)
	}

	return resource, nil
}

// reloadResource fetches path and replaces the record's entire state with
// the response.
func reloadResource(ctx context.Context, httpClient *internalhttp.Client, path string, resource siampay.Resource) error {
	resp, err := httpClient.Get(ctx, path)
	if err != nil {
		return err
	}

	data, err := decodeObject(resp)
	if err != nil {
		return err
	}

	resource.Load(data)

	return nil
}

// mergeChanges merges a record's dirty fields with explicitly passed
// fields. Explicit fields win on conflict.
func mergeChanges(resource siampay.Resource, fields map[string]any) url.Values {
	merged := resource.Changes()
	for key, value := range fields {
		merged[key] = value
	}

	return encodeFields(merged)
}

// instanceID returns the record's identifier or an error when it has none.
func instanceID(resource siampay.Resource) (string, error) {
	id := resource.ID()
	if id == "" {
		return "", siampay.ErrIDRequired
	}

	return id, nil
}

// instanceLocation returns the record's server-supplied instance path.
// Sub-resources such as cards and refunds carry their canonical path in a
// location field instead of following a collection template.
func instanceLocation(resource siampay.Resource) (string, error) {
	location, err := resource.Get("location")
	if err != nil {
		return "", siampay.ErrLocationRequired
	}

	path, ok := location.(string)
	if !ok || path == "" {
		return "", siampay.ErrLocationRequired
	}

	return path, nil
}
