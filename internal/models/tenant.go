package models

import (
	"fmt"
	"strings"
)

type Tenant struct {
	ID        ID     `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// DisplayName prefers full_name, then first+last, then email.
func (t *Tenant) DisplayName() string {
	if n := strings.TrimSpace(t.FullName); n != "" {
		return n
	}
	if n := strings.TrimSpace(strings.TrimSpace(t.FirstName) + " " + strings.TrimSpace(t.LastName)); n != "" {
		return n
	}
	if e := strings.TrimSpace(t.Email); e != "" {
		return e
	}
	if t.ID.Valid {
		return fmt.Sprintf("Tenant #%d", t.ID.Value)
	}
	return "Unknown tenant"
}
