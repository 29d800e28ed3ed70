package api

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/rajnish018/portfolio-admin-backend/models"
)

var errEmptyList = errors.New("list contained no valid entries")

// normalizeStringList coerces a request value into a list of trimmed,
// non-empty strings. Accepted shapes, tried in order: a native JSON list, a
// JSON-encoded list inside a string, a comma-separated string. An empty
// result is an error.
func normalizeStringList(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return nil, errEmptyList
	}

	var native []string
	if err := json.Unmarshal(raw, &native); err == nil {
		return trimNonEmpty(native)
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err != nil {
		return nil, errEmptyList
	}

	var embedded []string
	if err := json.Unmarshal([]byte(asString), &embedded); err == nil {
		return trimNonEmpty(embedded)
	}

	return trimNonEmpty(strings.Split(asString, ","))
}

func trimNonEmpty(values []string) ([]string, error) {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil, errEmptyList
	}
	return out, nil
}

// normalizeSkillItems coerces a request value into skill items. Entries may
// be plain strings or {name} objects; the whole list may also arrive as a
// JSON-encoded string or a comma-separated string. Invalid entries are
// dropped; an empty result is an error.
func normalizeSkillItems(raw json.RawMessage) ([]models.SkillItem, error) {
	if len(raw) == 0 {
		return nil, errEmptyList
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err == nil {
		return skillItemsFromEntries(entries)
	}

	// fall back to the string shapes
	names, err := normalizeStringList(raw)
	if err != nil {
		return nil, err
	}
	items := make([]models.SkillItem, 0, len(names))
	for _, name := range names {
		items = append(items, models.SkillItem{Name: name})
	}
	return items, nil
}

func skillItemsFromEntries(entries []json.RawMessage) ([]models.SkillItem, error) {
	items := make([]models.SkillItem, 0, len(entries))
	for _, entry := range entries {
		var asString string
		if err := json.Unmarshal(entry, &asString); err == nil {
			if trimmed := strings.TrimSpace(asString); trimmed != "" {
				items = append(items, models.SkillItem{Name: trimmed})
			}
			continue
		}

		var asItem models.SkillItem
		if err := json.Unmarshal(entry, &asItem); err == nil {
			if trimmed := strings.TrimSpace(asItem.Name); trimmed != "" {
				items = append(items, models.SkillItem{Name: trimmed})
			}
		}
		// anything else is dropped
	}
	if len(items) == 0 {
		return nil, errEmptyList
	}
	return items, nil
}

// parseFlexBool accepts a JSON boolean or the strings "true"/"false". A nil
// result means the field was absent.
func parseFlexBool(raw json.RawMessage) (*bool, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var native bool
	if err := json.Unmarshal(raw, &native); err == nil {
		return &native, nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err != nil {
		return nil, errors.New("expected a boolean")
	}
	switch strings.TrimSpace(asString) {
	case "true":
		v := true
		return &v, nil
	case "false":
		v := false
		return &v, nil
	default:
		return nil, errors.New("expected a boolean")
	}
}
