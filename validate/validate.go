// Package validate provides field-level syntax validators for the values
// gathered by interactive prompt flows: targets, ports, URLs, MAC
// addresses, durations, and the like.
//
// Validators are looked up by Kind through a registry resolved at
// manifest load time, so a manifest naming an unknown kind fails the load
// rather than the prompt.
package validate

import (
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Kind identifies the syntax a flag value must satisfy.
type Kind string

const (
	KindIP        Kind = "ip"
	KindCIDR      Kind = "cidr"
	KindHost      Kind = "host"
	KindPort      Kind = "port"
	KindPortRange Kind = "portrange"
	KindURL       Kind = "url"
	KindMAC       Kind = "mac"
	KindDuration  Kind = "duration"
	KindRate      Kind = "rate"
	KindPath      Kind = "path"
	KindInt       Kind = "int"
	KindString    Kind = "string"
	KindBool      Kind = "bool"
)

// Func checks a single prompt value and returns a descriptive error when
// the value does not satisfy the kind's syntax.
type Func func(value string) error

var (
	mu       sync.RWMutex
	registry = map[Kind]Func{
		KindIP:        IP,
		KindCIDR:      CIDR,
		KindHost:      Host,
		KindPort:      Port,
		KindPortRange: PortRange,
		KindURL:       URL,
		KindMAC:       MAC,
		KindDuration:  Duration,
		KindRate:      Rate,
		KindPath:      Path,
		KindInt:       Int,
		KindString:    NonEmpty,
		KindBool:      Bool,
	}
)

// Register installs or replaces the validator for a kind. Adapters with
// tool-specific syntaxes extend the registry before loading manifests.
func Register(kind Kind, fn Func) {
	mu.Lock()
	defer mu.Unlock()
	registry[kind] = fn
}

// ForKind returns the validator registered for kind. The empty kind maps
// to KindString.
func ForKind(kind Kind) (Func, bool) {
	if kind == "" {
		kind = KindString
	}
	mu.RLock()
	defer mu.RUnlock()
	fn, ok := registry[kind]
	return fn, ok
}

// IP validates an IPv4 or IPv6 address.
func IP(value string) error {
	if _, err := netip.ParseAddr(value); err != nil {
		return fmt.Errorf("invalid IP address %q", value)
	}
	return nil
}

// CIDR validates a prefix in CIDR notation.
func CIDR(value string) error {
	if _, err := netip.ParsePrefix(value); err != nil {
		return fmt.Errorf("invalid CIDR range %q", value)
	}
	return nil
}

var hostnamePattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,62}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,62}[a-zA-Z0-9])?)*$`)

// Host validates an IP address or RFC 1123 hostname.
func Host(value string) error {
	if _, err := netip.ParseAddr(value); err == nil {
		return nil
	}
	if len(value) > 253 || !hostnamePattern.MatchString(value) {
		return fmt.Errorf("invalid host %q", value)
	}
	return nil
}

// Port validates a single TCP/UDP port number.
func Port(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("invalid port %q (must be 1-65535)", value)
	}
	return nil
}

// PortRange validates a comma-separated list of ports and low-high port
// ranges, e.g. "22", "1-1024", "22,80,8000-8100".
func PortRange(value string) error {
	if value == "" {
		return fmt.Errorf("empty port range")
	}
	for _, part := range strings.Split(value, ",") {
		lo, hi, ranged := strings.Cut(part, "-")
		if !ranged {
			if err := Port(part); err != nil {
				return err
			}
			continue
		}
		if err := Port(lo); err != nil {
			return err
		}
		if err := Port(hi); err != nil {
			return err
		}
		a, _ := strconv.Atoi(lo)
		b, _ := strconv.Atoi(hi)
		if a > b {
			return fmt.Errorf("invalid port range %q (start exceeds end)", part)
		}
	}
	return nil
}

// URL validates an absolute http or https URL.
func URL(value string) error {
	u, err := url.Parse(value)
	if err != nil || u.Host == "" {
		return fmt.Errorf("invalid URL %q", value)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL %q (scheme must be http or https)", value)
	}
	return nil
}

// MAC validates a hardware address in any form net.ParseMAC accepts.
func MAC(value string) error {
	if _, err := net.ParseMAC(value); err != nil {
		return fmt.Errorf("invalid MAC address %q", value)
	}
	return nil
}

// Duration validates a Go duration string ("30s", "5m") or a bare number
// of seconds, the form most scanner timeouts accept.
func Duration(value string) error {
	if _, err := strconv.Atoi(value); err == nil {
		return nil
	}
	if _, err := time.ParseDuration(value); err != nil {
		return fmt.Errorf("invalid duration %q", value)
	}
	return nil
}

// Rate validates a positive integer rate (packets or requests per second).
func Rate(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fmt.Errorf("invalid rate %q (must be a positive integer)", value)
	}
	return nil
}

// Path validates that a filesystem path exists.
func Path(value string) error {
	if value == "" {
		return fmt.Errorf("empty path")
	}
	if _, err := os.Stat(value); err != nil {
		return fmt.Errorf("path %q does not exist", value)
	}
	return nil
}

// Int validates a base-10 integer.
func Int(value string) error {
	if _, err := strconv.Atoi(value); err != nil {
		return fmt.Errorf("invalid integer %q", value)
	}
	return nil
}

// NonEmpty validates that a value is not blank.
func NonEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value must not be empty")
	}
	return nil
}

// Bool validates a value strconv.ParseBool accepts.
func Bool(value string) error {
	if _, err := strconv.ParseBool(value); err != nil {
		return fmt.Errorf("invalid boolean %q", value)
	}
	return nil
}
