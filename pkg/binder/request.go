package binder

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
)

const (
	// DefaultMaxBodySize bounds JSON bodies.
	DefaultMaxBodySize = 1 << 20
	// DefaultMaxMemory bounds multipart forms kept in memory.
	DefaultMaxMemory = 10 << 20
)

// ValuesFromURL keeps the first value of every key.
func ValuesFromURL(v url.Values) Values {
	out := make(Values, len(v))
	for k, vals := range v {
		if len(vals) > 0 {
			out[k] = vals[0]
		}
	}
	return out
}

// ValuesFromRequest extracts submitted values. Requests without a body use the
// query string.
func ValuesFromRequest(r *http.Request) (Values, error) {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
			return ValuesFromURL(r.URL.Query()), nil
		}
		return nil, fmt.Errorf("%w: missing content type", ErrUnsupportedMediaType)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMediaType, err)
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
		}
		return ValuesFromURL(r.PostForm), nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
		}
		return ValuesFromURL(r.MultipartForm.Value), nil
	case "application/json":
		return valuesFromJSON(r.Body)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
}

func valuesFromJSON(body io.Reader) (Values, error) {
	dec := json.NewDecoder(io.LimitReader(body, DefaultMaxBodySize))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return ValuesFromMap(raw)
}

// ValuesFromMap converts decoded JSON-like data. Scalars are formatted as
// text; nested arrays and objects are rejected.
func ValuesFromMap(raw map[string]any) (Values, error) {
	out := make(Values, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = val
		case json.Number:
			out[k] = val.String()
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case bool:
			out[k] = strconv.FormatBool(val)
		default:
			return nil, fmt.Errorf("%w: field %q must be a scalar", ErrInvalidBody, k)
		}
	}
	return out, nil
}
