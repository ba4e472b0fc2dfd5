package validators

import (
	"net"
	"strings"
)

// DomainChecker reports whether an email's domain can receive mail.
type DomainChecker func(email string) bool

// IsEmailDomainValid resolves MX first, then plain A/AAAA records.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}

// AcceptAll skips the DNS lookup.
func AcceptAll(string) bool { return true }

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
