package webcall

import (
	"fmt"
	"net/url"
	"strconv"
)

// SchemeHTTP is the only scheme a plain transport can carry.
const SchemeHTTP = "http"

const (
	defaultHost = "localhost"
	defaultPort = 80
)

// Locator is a parsed target URL: scheme, authority, and the resource
// string sent on the request line. A Locator is built once per call and
// never mutated.
type Locator struct {
	Scheme   string
	Host     string
	Port     int
	Path     string
	Query    string // without the leading '?'
	Fragment string // without the leading '#'
}

// ResolveLocator parses rawurl into a Locator. Absent authority defaults
// the host to "localhost", absent port defaults to 80, absent path to "/".
// Unparseable input, a missing scheme, or an opaque (non-hierarchical) URL
// fail with ErrMalformedLocator. Scheme support is checked later, at
// connection establishment.
func ResolveLocator(rawurl string) (Locator, error) {
	u, err := url.Parse(rawurl)
	if err != nil {
		return Locator{}, fmt.Errorf("%w: %v", ErrMalformedLocator, err)
	}
	if u.Scheme == "" {
		return Locator{}, fmt.Errorf("%w: %q has no scheme", ErrMalformedLocator, rawurl)
	}
	if u.Opaque != "" {
		return Locator{}, fmt.Errorf("%w: %q is not hierarchical", ErrMalformedLocator, rawurl)
	}

	loc := Locator{
		Scheme:   u.Scheme,
		Host:     u.Hostname(),
		Port:     defaultPort,
		Path:     u.EscapedPath(),
		Query:    u.RawQuery,
		Fragment: u.EscapedFragment(),
	}
	if loc.Host == "" {
		loc.Host = defaultHost
	}
	if loc.Path == "" {
		loc.Path = "/"
	}
	if p := u.Port(); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || n < 1 || n > 65535 {
			return Locator{}, fmt.Errorf("%w: port %q out of range", ErrMalformedLocator, p)
		}
		loc.Port = n
	}
	return loc, nil
}

// Target returns the resource string for the request line: path, query and
// fragment exactly as they appeared in the original locator.
func (l Locator) Target() string {
	t := l.Path
	if l.Query != "" {
		t += "?" + l.Query
	}
	if l.Fragment != "" {
		t += "#" + l.Fragment
	}
	return t
}
