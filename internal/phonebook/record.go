package phonebook

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Record is a single contact entry. The field set is fixed; values are
// free-form strings, empty values allowed. Records carry no identity of
// their own; their position in the collection is their identity.
type Record struct {
	LastName      string `json:"last_name"`
	FirstName     string `json:"first_name"`
	MiddleName    string `json:"middle_name"`
	Organization  string `json:"organization"`
	WorkPhone     string `json:"work_phone"`
	PersonalPhone string `json:"personal_phone"`
}

// Render returns the canonical compact JSON form of the record with
// Unicode left unescaped. Search matches against this rendering, so a
// term can hit any field value, or technically a key or a brace; that
// quirk is deliberate and kept.
func (r Record) Render() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(r); err != nil {
		// a struct of strings cannot fail to encode
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
