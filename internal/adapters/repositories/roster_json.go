package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// LoadRosterJSON reads a JSON array of agent identifiers.
//
// Entries that are not strings or are blank after trimming are skipped.
// Duplicates are dropped with the first occurrence winning, so the returned
// order is the file order.
func LoadRosterJSON(jsonPath string) ([]string, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load roster: read %q: %w", jsonPath, err)
	}

	var data []any
	if err := json.Unmarshal(bytes, &data); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("load roster: %q must be a JSON array of strings", jsonPath)
		}
		return nil, fmt.Errorf("load roster: parse json: %w", err)
	}

	seen := make(map[string]struct{}, len(data))
	ids := make([]string, 0, len(data))
	for _, item := range data {
		s, ok := item.(string)
		if !ok {
			continue
		}

		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		ids = append(ids, s)
	}

	return ids, nil
}
