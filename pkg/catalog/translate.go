package catalog

import "fmt"

// messageCarrier is satisfied by error-like objects that carry a message
// string, e.g. validation issues.
type messageCarrier interface {
	Message() string
}

// TranslateFunc resolves a raw error value to a display string.
type TranslateFunc func(v any) (string, error)

// Translator returns a function that localizes error values against c.
//
// Accepted inputs: nil (empty result), a string, a non-empty []string whose
// first element is the primary candidate, an error, or a message carrier.
// When the primary candidate is a catalog key its message function is
// invoked; otherwise the candidate passes through verbatim. Unrecognized
// keys are never an error — only a value of an unsupported type is.
func Translator(c Catalog) TranslateFunc {
	return func(v any) (string, error) {
		switch value := v.(type) {
		case nil:
			return "", nil
		case string:
			return resolve(c, value), nil
		case []string:
			if len(value) == 0 {
				return "", nil
			}
			return resolve(c, value[0]), nil
		case messageCarrier:
			return resolve(c, value.Message()), nil
		case error:
			return resolve(c, value.Error()), nil
		default:
			return "", fmt.Errorf("%w: %T", ErrInvalidInput, v)
		}
	}
}

func resolve(c Catalog, key string) string {
	if fn, ok := c[key]; ok {
		return fn()
	}
	return key
}
