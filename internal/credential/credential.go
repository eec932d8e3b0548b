// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package credential resolves the session cookie used to authenticate
// requests to the library site. The cookie is given either inline as
// NAME=VALUE or as the path of a JSON file holding an object of cookie
// names to values.
package credential

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/paperboy/pkg/types"
)

// ErrInvalidCredential is wrapped by every resolution failure.
var ErrInvalidCredential = errors.New("invalid session cookie")

// Resolve turns arg into a Credential. If arg names an existing regular
// file its contents are decoded as JSON; otherwise arg must be a single
// NAME=VALUE pair with exactly one '=' and both sides non-empty.
func Resolve(arg string) (types.Credential, error) {
	if info, err := os.Stat(arg); err == nil && info.Mode().IsRegular() {
		return Load(arg)
	}
	return parseInline(arg)
}

// Load reads a JSON cookie file. Every value must be a string and the
// object must not be empty.
func Load(path string) (types.Credential, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrInvalidCredential, path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrInvalidCredential, path, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s holds no cookies", ErrInvalidCredential, path)
	}

	cred := make(types.Credential, len(raw))
	for name, v := range raw {
		value, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("%w: cookie %q in %s is not a string", ErrInvalidCredential, name, path)
		}
		if strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: empty cookie name in %s", ErrInvalidCredential, path)
		}
		cred[name] = value
	}
	return cred, nil
}

func parseInline(arg string) (types.Credential, error) {
	parts := strings.Split(arg, "=")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("%w: %q is neither a cookie file nor NAME=VALUE", ErrInvalidCredential, arg)
	}
	return types.Credential{parts[0]: parts[1]}, nil
}
