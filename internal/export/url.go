package export

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// ShareParams describes a shareable comparison view.
type ShareParams struct {
	// MaterialIDs are the selected materials, comma-joined in the query.
	MaterialIDs []string
	// Weights are optional scoring weights; omitted when nil.
	Weights map[string]float64
	// Category is the optional active category filter.
	Category string
}

// BuildShareURL encodes the selection onto base as query parameters:
// "materials" (comma-joined ids), one "w_<name>" per weight, and
// "category". Weight keys are emitted in sorted order for stable output.
func BuildShareURL(base string, params ShareParams) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing share base URL: %w", err)
	}

	q := u.Query()
	if len(params.MaterialIDs) > 0 {
		q.Set("materials", strings.Join(params.MaterialIDs, ","))
	}
	for _, name := range sortedWeightKeys(params.Weights) {
		q.Set("w_"+name, fmt.Sprintf("%g", params.Weights[name]))
	}
	if params.Category != "" {
		q.Set("category", params.Category)
	}

	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ParseShareURL decodes a shared link back into selection parameters.
// Unknown parameters are ignored; malformed weights are skipped.
func ParseShareURL(raw string) (ShareParams, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return ShareParams{}, fmt.Errorf("parsing share URL: %w", err)
	}

	q := u.Query()
	params := ShareParams{Category: q.Get("category")}

	if materials := q.Get("materials"); materials != "" {
		for _, id := range strings.Split(materials, ",") {
			if id = strings.TrimSpace(id); id != "" {
				params.MaterialIDs = append(params.MaterialIDs, id)
			}
		}
	}

	for key, values := range q {
		name, ok := strings.CutPrefix(key, "w_")
		if !ok || len(values) == 0 {
			continue
		}
		var w float64
		if _, scanErr := fmt.Sscanf(values[0], "%g", &w); scanErr != nil {
			continue
		}
		if params.Weights == nil {
			params.Weights = make(map[string]float64)
		}
		params.Weights[name] = w
	}

	return params, nil
}

func sortedWeightKeys(weights map[string]float64) []string {
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
