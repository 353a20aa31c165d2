package transport

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Family identifies the socket family of a transport binding.
type Family int

const (
	FamilyIPv4 Family = iota
	FamilyIPv6
	FamilyUnix
)

func (f Family) String() string {
	switch f {
	case FamilyIPv4:
		return "ipv4"
	case FamilyIPv6:
		return "ipv6"
	case FamilyUnix:
		return "unix"
	default:
		return "unknown"
	}
}

// Binding is the single datagram endpoint a pipeline listens on: either an
// IPv4/IPv6 socket address or a local path-addressed (unix datagram) endpoint.
// Exactly one binding is active per pipeline instance.
type Binding struct {
	Family Family

	// Host and Port are set for FamilyIPv4/FamilyIPv6 bindings.
	Host string
	Port int

	// Path is set for FamilyUnix bindings.
	Path string
}

// ParseBind parses a bind address of the form ip://host:port or unix://path.
// The ip:// scheme is assumed when none is given. localhost and an empty host
// resolve to the loopback address. All failures are configuration-fatal and
// raised before any ingestion begins.
func ParseBind(inpt string) (*Binding, error) {
	if !strings.Contains(inpt, "://") {
		inpt = "ip://" + inpt
	}
	res, err := url.Parse(inpt)
	if err != nil {
		return nil, errors.WithMessagef(err, "invalid bind address %q", inpt)
	}
	switch res.Scheme {
	case "ip":
		return parseIPBind(res, inpt)
	case "unix":
		path := res.Host + res.Path
		if path == "" {
			return nil, errors.Errorf("no socket path in bind address %q", inpt)
		}
		return &Binding{Family: FamilyUnix, Path: path}, nil
	default:
		return nil, errors.Errorf("unsupported scheme %q in bind address %q", res.Scheme, inpt)
	}
}

func parseIPBind(res *url.URL, inpt string) (*Binding, error) {
	host := res.Hostname()
	if host == "" || host == "localhost" {
		host = "127.0.0.1"
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return nil, errors.Errorf("host %q in bind address %q is not an IP address", host, inpt)
	}
	if res.Port() == "" {
		return nil, errors.Errorf("no port for ip socket in bind address %q", inpt)
	}
	port, err := strconv.Atoi(res.Port())
	if err != nil {
		return nil, errors.WithMessagef(err, "invalid port in bind address %q", inpt)
	}
	family := FamilyIPv6
	if ip.To4() != nil {
		family = FamilyIPv4
	}
	return &Binding{Family: family, Host: ip.String(), Port: port}, nil
}

// Network returns the net package network name for the binding.
func (b *Binding) Network() string {
	switch b.Family {
	case FamilyIPv4:
		return "udp4"
	case FamilyIPv6:
		return "udp6"
	default:
		return "unixgram"
	}
}

// Address returns the net package address string for the binding.
func (b *Binding) Address() string {
	if b.Family == FamilyUnix {
		return b.Path
	}
	return net.JoinHostPort(b.Host, strconv.Itoa(b.Port))
}

func (b *Binding) String() string {
	if b.Family == FamilyUnix {
		return "unix://" + b.Path
	}
	return "ip://" + b.Address()
}
