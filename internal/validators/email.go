package validators

import (
	"errors"
	"net"
	"strings"
)

// IsEmailDomainValid checks that the address has a resolvable domain.
// DNS trouble must not lock farmers out of registration, so only a
// definitive "no such domain" answer rejects; resolver errors pass.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	ips, err := net.LookupIP(domain)
	if err == nil {
		return len(ips) > 0
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) && dnsErr.IsNotFound {
		return false
	}

	return true
}
