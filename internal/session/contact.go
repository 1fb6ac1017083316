package session

import "strings"

const contactSeparator = ", "

// Contact is the parsed form of a session's contact string.
type Contact struct {
	Phone string
	Email string
}

// ParseContact splits "phone, email". Anything that does not split into
// exactly two parts is kept whole as the phone number.
func ParseContact(raw string) Contact {
	if raw == "" {
		return Contact{}
	}
	parts := strings.Split(raw, contactSeparator)
	if len(parts) != 2 {
		return Contact{Phone: raw}
	}
	return Contact{Phone: parts[0], Email: parts[1]}
}

// Empty reports whether neither field is present.
func (c Contact) Empty() bool {
	return c.Phone == "" && c.Email == ""
}
