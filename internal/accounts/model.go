package accounts

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"
)

// createdAtLayout matches the millisecond ISO-8601 form browsers produce.
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// JSON field names of the named user attributes. Extra fields may not use them.
const (
	fieldID         = "id"
	fieldFullName   = "fullName"
	fieldEmail      = "email"
	fieldPhone      = "phone"
	fieldNationalID = "cccd"
	fieldPassword   = "password"
	fieldCreatedAt  = "createdAt"
)

var reservedFields = map[string]struct{}{
	fieldID: {}, fieldFullName: {}, fieldEmail: {}, fieldPhone: {},
	fieldNationalID: {}, fieldPassword: {}, fieldCreatedAt: {},
}

// User is one member account.
//
// Password is kept in plain text; the store is a local stand-in database and
// nothing here is meant to withstand an attacker with access to it.
type User struct {
	ID         int64
	FullName   string
	Email      string
	Phone      string
	NationalID string
	Password   string
	CreatedAt  time.Time

	// Extra holds any additional registration fields. They are persisted
	// flat, next to the named attributes.
	Extra map[string]string

	// RawExtra keeps the stored JSON of extra fields that were not strings
	// (numbers, booleans, objects). Extra shows them as their JSON text; as
	// long as that text is unchanged they are written back with their
	// original type.
	RawExtra map[string]json.RawMessage
}

// Clone returns a deep copy.
func (u User) Clone() User {
	u.Extra = maps.Clone(u.Extra)
	if u.RawExtra != nil {
		raw := make(map[string]json.RawMessage, len(u.RawExtra))
		for k, v := range u.RawExtra {
			raw[k] = slices.Clone(v)
		}
		u.RawExtra = raw
	}
	return u
}

// MarshalJSON writes a flat object: extra fields first, then the named
// attributes, so a named attribute always wins.
func (u User) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(u.Extra)+len(reservedFields))
	for k, v := range u.Extra {
		if raw, ok := u.RawExtra[k]; ok && string(raw) == v {
			out[k] = raw
			continue
		}
		out[k] = v
	}
	out[fieldID] = u.ID
	out[fieldFullName] = u.FullName
	out[fieldEmail] = u.Email
	out[fieldPhone] = u.Phone
	out[fieldNationalID] = u.NationalID
	out[fieldPassword] = u.Password
	if u.CreatedAt.IsZero() {
		out[fieldCreatedAt] = ""
	} else {
		out[fieldCreatedAt] = u.CreatedAt.UTC().Format(createdAtLayout)
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the flat object written by MarshalJSON. Unknown keys
// land in Extra; non-string unknown values are kept as their raw JSON text.
func (u *User) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	var decoded User
	idRaw, ok := raw[fieldID]
	if !ok {
		return fmt.Errorf("user record without %q", fieldID)
	}
	if err := json.Unmarshal(idRaw, &decoded.ID); err != nil {
		return fmt.Errorf("user %s: %w", fieldID, err)
	}

	fields := map[string]*string{
		fieldFullName:   &decoded.FullName,
		fieldEmail:      &decoded.Email,
		fieldPhone:      &decoded.Phone,
		fieldNationalID: &decoded.NationalID,
		fieldPassword:   &decoded.Password,
	}
	for name, dst := range fields {
		v, ok := raw[name]
		if !ok {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("user %s: %w", name, err)
		}
	}

	if v, ok := raw[fieldCreatedAt]; ok {
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return fmt.Errorf("user %s: %w", fieldCreatedAt, err)
		}
		if s != "" {
			t, err := time.Parse(time.RFC3339Nano, s)
			if err != nil {
				return fmt.Errorf("user %s: %w", fieldCreatedAt, err)
			}
			decoded.CreatedAt = t.UTC()
		}
	}

	for k, v := range raw {
		if _, named := reservedFields[k]; named {
			continue
		}
		if decoded.Extra == nil {
			decoded.Extra = make(map[string]string)
		}
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			s = string(v)
			if decoded.RawExtra == nil {
				decoded.RawExtra = make(map[string]json.RawMessage)
			}
			decoded.RawExtra[k] = slices.Clone(v)
		}
		decoded.Extra[k] = s
	}

	*u = decoded
	return nil
}

// Registration carries the candidate fields of a new account. Shape checks
// (presence, format, confirmation) belong to the caller.
type Registration struct {
	FullName   string
	Email      string
	Phone      string
	NationalID string
	Password   string
	Extra      map[string]string
}

// Patch is a shallow partial update: nil fields are left alone, extra keys
// overwrite one by one. ID and CreatedAt cannot be patched.
type Patch struct {
	FullName   *string
	Email      *string
	Phone      *string
	NationalID *string
	Password   *string
	Extra      map[string]string
}

func (p Patch) applyTo(u *User) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&u.FullName, p.FullName)
	set(&u.Email, p.Email)
	set(&u.Phone, p.Phone)
	set(&u.NationalID, p.NationalID)
	set(&u.Password, p.Password)

	extra := cleanExtra(p.Extra)
	if len(extra) == 0 {
		return
	}
	if u.Extra == nil {
		u.Extra = make(map[string]string, len(extra))
	}
	maps.Copy(u.Extra, extra)
	for k := range extra {
		delete(u.RawExtra, k)
	}
	if len(u.RawExtra) == 0 {
		u.RawExtra = nil
	}
}

// cleanExtra drops keys that would shadow a named attribute.
func cleanExtra(extra map[string]string) map[string]string {
	if len(extra) == 0 {
		return nil
	}
	out := make(map[string]string, len(extra))
	for k, v := range extra {
		if _, named := reservedFields[k]; named {
			continue
		}
		out[k] = v
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
