package domain

import (
	"fmt"
	"strings"
	"time"
)

// Authorization records that the wallet granted this client access to an account.
type Authorization struct {
	Address      string
	AuthorizedAt time.Time
}

func (a Authorization) Validate() error {
	if strings.TrimSpace(a.Address) == "" {
		return fmt.Errorf("address is required")
	}
	if !strings.HasPrefix(a.Address, "0x") || len(a.Address) != 42 {
		return fmt.Errorf("invalid address %q", a.Address)
	}

	return nil
}

// SameAddress compares hex addresses case-insensitively.
func SameAddress(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
