package helper

import (
	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
)

func emptyJSONArray() datatypes.JSON  { return datatypes.JSON("[]") }
func emptyJSONObject() datatypes.JSON { return datatypes.JSON("{}") }

// JSONStrings stores a string list column; nil becomes [].
func JSONStrings(values []string) datatypes.JSON {
	if len(values) == 0 {
		return emptyJSONArray()
	}
	b, err := sonic.Marshal(values)
	if err != nil {
		return emptyJSONArray()
	}
	return datatypes.JSON(b)
}

// StringsFromJSON reads a string list column; empty or malformed content
// yields an empty (non-nil) slice.
func StringsFromJSON(raw datatypes.JSON) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	if err := sonic.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

// JSONObject stores a free-form object column; nil becomes {}.
func JSONObject(v map[string]any) datatypes.JSON {
	if len(v) == 0 {
		return emptyJSONObject()
	}
	b, err := sonic.Marshal(v)
	if err != nil {
		return emptyJSONObject()
	}
	return datatypes.JSON(b)
}

// ObjectFromJSON reads a free-form object column; never nil.
func ObjectFromJSON(raw datatypes.JSON) map[string]any {
	out := map[string]any{}
	if len(raw) == 0 {
		return out
	}
	if err := sonic.Unmarshal(raw, &out); err != nil || out == nil {
		return map[string]any{}
	}
	return out
}

// JSONValue marshals any value for audit style columns; nil stays nil.
func JSONValue(v any) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := sonic.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
