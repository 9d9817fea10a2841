package mcp

import (
	"encoding/json"

	"github.com/eddyv73/github-mcp/internal/domain"
)

// Parameter accessors shared by every tool type. They perform purely
// structural validation on the untyped argument object: no network, no
// filesystem. All failures are domain validation errors so the registry
// maps them to InvalidParams.

// actionParam extracts the required action field and checks it against the
// tool's declared enum.
func actionParam(params map[string]interface{}, allowed []string) (string, error) {
	raw, present := params["action"]
	if !present {
		return "", domain.ValidationError("action parameter is required")
	}

	action, ok := raw.(string)
	if !ok {
		return "", domain.ValidationError("action parameter must be a string")
	}

	for _, candidate := range allowed {
		if action == candidate {
			return action, nil
		}
	}
	return "", domain.ValidationError("action %q is not one of %v", action, allowed)
}

// stringParam returns a string field, distinguishing absent from present.
func stringParam(params map[string]interface{}, key string) (string, bool, error) {
	raw, present := params[key]
	if !present || raw == nil {
		return "", false, nil
	}

	value, ok := raw.(string)
	if !ok {
		return "", false, domain.ValidationError("%s parameter must be a string", key)
	}
	return value, true, nil
}

// requiredString returns a string field that an action depends on.
func requiredString(params map[string]interface{}, key, action string) (string, error) {
	value, present, err := stringParam(params, key)
	if err != nil {
		return "", err
	}
	if !present || value == "" {
		return "", domain.ValidationError("%s parameter is required for action %q", key, action)
	}
	return value, nil
}

// stringParamDefault returns a string field or a default when absent.
func stringParamDefault(params map[string]interface{}, key, def string) (string, error) {
	value, present, err := stringParam(params, key)
	if err != nil {
		return "", err
	}
	if !present {
		return def, nil
	}
	return value, nil
}

// boolParamDefault returns a boolean field or a default when absent.
func boolParamDefault(params map[string]interface{}, key string, def bool) (bool, error) {
	raw, present := params[key]
	if !present || raw == nil {
		return def, nil
	}

	value, ok := raw.(bool)
	if !ok {
		return false, domain.ValidationError("%s parameter must be a boolean", key)
	}
	return value, nil
}

// intParamDefault returns a numeric field as int or a default when absent.
// JSON decoders deliver numbers as float64 or json.Number depending on mode.
func intParamDefault(params map[string]interface{}, key string, def int) (int, error) {
	raw, present := params[key]
	if !present || raw == nil {
		return def, nil
	}

	switch value := raw.(type) {
	case float64:
		return int(value), nil
	case int:
		return value, nil
	case json.Number:
		n, err := value.Int64()
		if err != nil {
			return 0, domain.ValidationError("%s parameter must be a number", key)
		}
		return int(n), nil
	default:
		return 0, domain.ValidationError("%s parameter must be a number", key)
	}
}

// requiredInt returns a numeric field that an action depends on.
func requiredInt(params map[string]interface{}, key, action string) (int, error) {
	if _, present := params[key]; !present {
		return 0, domain.ValidationError("%s parameter is required for action %q", key, action)
	}
	return intParamDefault(params, key, 0)
}

// stringSliceParam returns an array field as a string slice.
func stringSliceParam(params map[string]interface{}, key string) ([]string, error) {
	raw, present := params[key]
	if !present || raw == nil {
		return nil, nil
	}

	items, ok := raw.([]interface{})
	if !ok {
		return nil, domain.ValidationError("%s parameter must be an array of strings", key)
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		value, ok := item.(string)
		if !ok {
			return nil, domain.ValidationError("%s parameter must be an array of strings", key)
		}
		result = append(result, value)
	}
	return result, nil
}

// objectParam returns an object field as a generic map.
func objectParam(params map[string]interface{}, key string) (map[string]interface{}, error) {
	raw, present := params[key]
	if !present || raw == nil {
		return nil, nil
	}

	value, ok := raw.(map[string]interface{})
	if !ok {
		return nil, domain.ValidationError("%s parameter must be an object", key)
	}
	return value, nil
}

// stringMapParam returns an object field whose values must all be strings.
func stringMapParam(params map[string]interface{}, key string) (map[string]string, error) {
	obj, err := objectParam(params, key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}

	result := make(map[string]string, len(obj))
	for name, raw := range obj {
		value, ok := raw.(string)
		if !ok {
			return nil, domain.ValidationError("%s parameter values must be strings", key)
		}
		result[name] = value
	}
	return result, nil
}
