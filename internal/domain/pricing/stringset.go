package pricing

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

// StringSet is an unordered set of strings used for rule and promotion
// scoping. An empty set means "applies to all". It serializes as a JSON
// array at the persistence edge only; domain code works with the set
// directly.
type StringSet map[string]struct{}

// NewStringSet builds a set from the given members
func NewStringSet(members ...string) StringSet {
	s := make(StringSet, len(members))
	for _, m := range members {
		if m != "" {
			s[m] = struct{}{}
		}
	}
	return s
}

// Contains reports whether the set includes the given member
func (s StringSet) Contains(member string) bool {
	_, ok := s[member]
	return ok
}

// IsEmpty reports whether the set has no members. An empty scope set
// means the rule or promotion is unscoped.
func (s StringSet) IsEmpty() bool {
	return len(s) == 0
}

// Members returns the set members in sorted order
func (s StringSet) Members() []string {
	members := make([]string, 0, len(s))
	for m := range s {
		members = append(members, m)
	}
	sort.Strings(members)
	return members
}

// Value implements driver.Valuer, serializing the set as a JSON array
func (s StringSet) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s.Members())
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner, accepting a JSON array of strings
func (s *StringSet) Scan(value interface{}) error {
	if value == nil {
		*s = NewStringSet()
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringSet", value)
	}

	if len(raw) == 0 {
		*s = NewStringSet()
		return nil
	}

	var members []string
	if err := json.Unmarshal(raw, &members); err != nil {
		return fmt.Errorf("invalid string set payload: %w", err)
	}
	*s = NewStringSet(members...)
	return nil
}

// MarshalJSON serializes the set as a sorted JSON array
func (s StringSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Members())
}

// UnmarshalJSON deserializes a JSON array into the set
func (s *StringSet) UnmarshalJSON(data []byte) error {
	var members []string
	if err := json.Unmarshal(data, &members); err != nil {
		return err
	}
	*s = NewStringSet(members...)
	return nil
}
