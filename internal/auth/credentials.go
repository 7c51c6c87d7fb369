// Package auth holds the webservice credential pair.
package auth

import (
	"encoding/base64"
	"fmt"
)

// Credentials is an HTTP Basic authentication pair for the Robot webservice.
// The username is the dedicated webservice user (e.g. "#ws+XXXXXXXX"), not
// the account name.
type Credentials struct {
	Username string
	Password string
}

// New creates a credential pair.
func New(username, password string) Credentials {
	return Credentials{Username: username, Password: password}
}

// HeaderValue returns the Authorization header value for these credentials.
func (c Credentials) HeaderValue() string {
	pair := c.Username + ":" + c.Password

	return "Basic " + base64.StdEncoding.EncodeToString([]byte(pair))
}

// String implements fmt.Stringer without revealing the password, so the
// credentials can never leak through logging or error formatting.
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{Username: %q, Password: <redacted>}", c.Username)
}

// GoString implements fmt.GoStringer, covering the %#v verb as well.
func (c Credentials) GoString() string {
	return c.String()
}
