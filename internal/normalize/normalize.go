// Package normalize converts the JSON-as-text columns of properties and
// checklist rows to structured values and back.
//
// Decoders never fail hard: on malformed input they return the empty value
// ({} or []) together with the error, and the row-level helpers log the
// error and keep going so one bad row cannot break a listing.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/dto"
	"github.com/ahmetcoskunkizilkaya/property-checklist/internal/models"
)

var (
	ErrNotObject       = errors.New("value is not a JSON object")
	ErrUnsupportedType = errors.New("unsupported value type")
)

// Property returns the client-facing form of a stored property.
func Property(p models.Property) dto.Property {
	loc, err := Location(p.Location)
	if err != nil {
		slog.Warn("failed to parse property location", "property_id", p.ID, "error", err)
	}
	images, err := StringList(p.PropertiesImage)
	if err != nil {
		slog.Warn("failed to parse property images", "property_id", p.ID, "error", err)
	}

	out := dto.Property{
		ID:              p.ID,
		Type:            p.Type,
		Name:            p.Name,
		BHK:             p.BHK,
		Location:        loc,
		PropertiesImage: images,
	}
	if !p.CreatedAt.IsZero() {
		createdAt := p.CreatedAt
		out.CreatedAt = &createdAt
	}
	return out
}

// ChecklistItem returns the client-facing form of a stored checklist row.
func ChecklistItem(item models.ChecklistItem) dto.ChecklistItem {
	components, err := StringList(item.Components)
	if err != nil {
		slog.Warn("failed to parse checklist components", "checklist_id", item.ID, "error", err)
	}
	return dto.ChecklistItem{
		ID:         item.ID,
		PropertyID: item.PropertyID,
		Type:       item.Type,
		BHKType:    item.BHKType,
		RoomName:   item.RoomName,
		Components: components,
	}
}

// Location decodes a location that is either JSON text or already
// structured. The zero Location is returned for empty or invalid input.
func Location(raw interface{}) (models.Location, error) {
	switch v := raw.(type) {
	case nil:
		return models.Location{}, nil
	case models.Location:
		return v, nil
	case *models.Location:
		if v == nil {
			return models.Location{}, nil
		}
		return *v, nil
	case map[string]interface{}:
		return locationFromMap(v), nil
	case string:
		return decodeLocation([]byte(v))
	case []byte:
		return decodeLocation(v)
	case json.RawMessage:
		return decodeLocation(v)
	default:
		return models.Location{}, fmt.Errorf("%w: %T", ErrUnsupportedType, raw)
	}
}

func decodeLocation(text []byte) (models.Location, error) {
	text = bytes.TrimSpace(text)
	if len(text) == 0 {
		return models.Location{}, nil
	}

	var decoded interface{}
	if err := json.Unmarshal(text, &decoded); err != nil {
		return models.Location{}, err
	}
	switch v := decoded.(type) {
	case nil:
		return models.Location{}, nil
	case map[string]interface{}:
		return locationFromMap(v), nil
	default:
		return models.Location{}, ErrNotObject
	}
}

func locationFromMap(m map[string]interface{}) models.Location {
	return models.Location{
		Address: stringify(m["address"]),
		City:    stringify(m["city"]),
		State:   stringify(m["state"]),
	}
}

// StringList decodes a list of strings that is either JSON text or already
// structured. A single decoded value that is not a list becomes a
// one-element list. An empty, non-nil slice is returned for empty or
// invalid input.
func StringList(raw interface{}) ([]string, error) {
	switch v := raw.(type) {
	case nil:
		return []string{}, nil
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case []interface{}:
		return fromSlice(v), nil
	case string:
		return decodeStringList([]byte(v))
	case []byte:
		return decodeStringList(v)
	case json.RawMessage:
		return decodeStringList(v)
	default:
		return []string{}, fmt.Errorf("%w: %T", ErrUnsupportedType, raw)
	}
}

func decodeStringList(text []byte) ([]string, error) {
	text = bytes.TrimSpace(text)
	if len(text) == 0 {
		return []string{}, nil
	}

	var decoded interface{}
	if err := json.Unmarshal(text, &decoded); err != nil {
		return []string{}, err
	}
	switch v := decoded.(type) {
	case nil:
		return []string{}, nil
	case []interface{}:
		return fromSlice(v), nil
	default:
		return []string{stringify(v)}, nil
	}
}

func fromSlice(items []interface{}) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, stringify(item))
	}
	return out
}

// StringListInput decodes a request field holding either a JSON array of
// strings or a JSON string that itself contains such an array. Entries are
// trimmed and blank entries dropped.
func StringListInput(raw json.RawMessage) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return []string{}, nil
	}

	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, err
		}
		inner = strings.TrimSpace(inner)
		if !strings.HasPrefix(inner, "[") {
			return compact([]string{inner}), nil
		}
		raw = []byte(inner)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, errors.New("must be a list of strings")
	}
	return compact(list), nil
}

func compact(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func stringify(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// EncodeLocation serializes a location for the properties.location column.
func EncodeLocation(loc models.Location) (string, error) {
	b, err := json.Marshal(loc)
	if err != nil {
		return "", fmt.Errorf("failed to encode location: %w", err)
	}
	return string(b), nil
}

// EncodeStringList serializes a list column. A nil list is stored as [].
func EncodeStringList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(b), nil
}
