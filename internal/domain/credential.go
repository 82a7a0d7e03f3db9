package domain

// Credential is the master (username, secret) pair. It lives only for the
// duration of one derivation and is never persisted.
type Credential struct {
	Username string
	Secret   string
}

func (c Credential) Complete() bool {
	return c.Username != "" && c.Secret != ""
}

// String keeps the secret out of logs and %v formatting.
func (c Credential) String() string {
	return "Credential{Username: " + c.Username + ", Secret: [redacted]}"
}
