// Package scutil parses the proxy dictionary that `scutil --proxy` prints on
// macOS. The command is the supported read-only view of the dynamic store key
// State:/Network/Global/Proxies and produces output like:
//
//	<dictionary> {
//	  ExceptionsList : <array> {
//	    0 : localhost
//	    1 : *.local
//	  }
//	  ExcludeSimpleHostnames : 1
//	  HTTPEnable : 1
//	  HTTPPort : 3128
//	  HTTPProxy : proxy.corp.example.com
//	  HTTPSEnable : 0
//	}
//
// The parser is platform independent; only the detector that runs scutil is
// compiled for darwin.
package scutil

import (
	"bufio"
	"io"
	"strings"
)

// Dictionary is the proxy-relevant content of the scutil output.
type Dictionary struct {
	Proxies       map[string]string // scheme -> host[:port], only enabled schemes
	Bypass        []string          // ExceptionsList entries, lowercased
	ExcludeSimple bool              // ExcludeSimpleHostnames flag
}

// schemePrefixes maps the URL scheme to the key prefix scutil uses for it.
var schemePrefixes = map[string]string{
	"http":  "HTTP",
	"https": "HTTPS",
	"ftp":   "FTP",
}

// Parse reads scutil --proxy output from r.
func Parse(r io.Reader) (*Dictionary, error) {
	fields := make(map[string]string)
	var exceptions []string

	inExceptions := false
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if inExceptions {
			if line == "}" {
				inExceptions = false
				continue
			}
			// Array entries look like "0 : localhost".
			if _, value, ok := strings.Cut(line, ":"); ok {
				if value = strings.ToLower(strings.TrimSpace(value)); value != "" {
					exceptions = append(exceptions, value)
				}
			}
			continue
		}

		if strings.HasPrefix(line, "ExceptionsList") && strings.Contains(line, "<array>") {
			inExceptions = true
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue // dictionary braces and the like
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	dict := &Dictionary{
		Proxies:       make(map[string]string, len(schemePrefixes)),
		Bypass:        exceptions,
		ExcludeSimple: fields["ExcludeSimpleHostnames"] == "1",
	}
	for scheme, prefix := range schemePrefixes {
		if fields[prefix+"Enable"] != "1" {
			continue
		}
		host := fields[prefix+"Proxy"]
		if host == "" {
			continue
		}
		if port := fields[prefix+"Port"]; port != "" {
			host += ":" + port
		}
		dict.Proxies[scheme] = host
	}
	return dict, nil
}
