// Package sysconfig reads the proxy configuration file /etc/sysconfig/proxy
// found on SUSE and Red Hat derived Linux systems. The file is line oriented
// with KEY="value" entries; see https://www.suse.com/support/kb/doc/?id=7006845
// for the format description.
package sysconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// DefaultPath is where the distribution installs the proxy sysconfig file.
const DefaultPath = "/etc/sysconfig/proxy"

// ErrMalformed reports a file that was readable but not in the expected
// KEY="value" format, or one missing the mandatory PROXY_ENABLED directive.
var ErrMalformed = errors.New("malformed sysconfig proxy file")

// Result holds the proxy settings extracted from a sysconfig proxy file.
type Result struct {
	Proxies map[string]string // scheme -> proxy address
	Bypass  []string          // NO_PROXY entries, trimmed and lowercased
}

var schemes = [...]string{"http", "https", "ftp"}

// LoadFile parses the sysconfig proxy file at path. A missing file or a file
// with PROXY_ENABLED="no" yields (nil, nil): the source was consulted and no
// proxy is configured there.
func LoadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Load parses sysconfig proxy content from r. See LoadFile.
func Load(r io.Reader) (*Result, error) {
	pairs, err := parsePairs(r)
	if err != nil {
		return nil, err
	}

	// Anything other than an explicit yes/no is illegal; a missing
	// PROXY_ENABLED directive is too.
	switch enabled, ok := pairs["PROXY_ENABLED"]; {
	case !ok:
		return nil, fmt.Errorf("%w: missing PROXY_ENABLED", ErrMalformed)
	case enabled == "no":
		return nil, nil
	case enabled != "yes":
		return nil, fmt.Errorf("%w: PROXY_ENABLED=%q", ErrMalformed, enabled)
	}

	res := &Result{Proxies: make(map[string]string, len(schemes))}
	for _, scheme := range schemes {
		if addr := pairs[strings.ToUpper(scheme)+"_PROXY"]; addr != "" {
			res.Proxies[scheme] = addr
		}
	}

	for _, entry := range strings.Split(pairs["NO_PROXY"], ",") {
		entry = strings.ToLower(strings.TrimSpace(entry))
		if entry != "" {
			res.Bypass = append(res.Bypass, entry)
		}
	}

	return res, nil
}

// parsePairs reads KEY="value" lines into a map. Blank lines and # comments
// are skipped; any other line without a ="-delimited value is an error. The
// value ends at the next double quote, and trailing characters after it are
// tolerated, as is a missing closing quote.
func parsePairs(r io.Reader) (map[string]string, error) {
	pairs := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if trimmed := strings.TrimSpace(line); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, `="`)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, line)
		}
		if end := strings.IndexByte(value, '"'); end >= 0 {
			value = value[:end]
		}
		pairs[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}
