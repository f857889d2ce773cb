package dto

import "encoding/json"

// StringList is a []string that tolerates non-list JSON input. A scalar or
// object value is replaced with an empty list instead of failing the bind,
// matching the lenient skills handling of the profile upsert operations.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (s *StringList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		*s = StringList{}
		return nil
	}
	*s = items
	return nil
}
