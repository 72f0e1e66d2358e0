package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the set of HTTP header names (lowercase) redacted from
// logs. The HTTP middleware's RedactHeaders uses the same set.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"x-api-key":           true,
	"cookie":              true,
	"proxy-authorization": true,
}

// sensitiveFields are attribute keys whose values are always redacted.
var sensitiveFields = []string{
	"password",
	"secret",
	"token",
	"dsn",
}

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// dsnPasswordPattern matches the password pair of a key/value Postgres DSN,
// as found in driver connection errors.
var dsnPasswordPattern = regexp.MustCompile(`(?i)password\s*=\s*\S+`)

// urlCredentialPattern matches user:password@ in connection URLs such as
// postgres:// and redis://.
var urlCredentialPattern = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.\-]*://[^:/@\s]*:[^@\s]+@`)

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. Keys are matched by name first; regexes catch
// credentials embedded in free-form values like error strings.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+4)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithFieldPrefix("secret_"),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(dsnPasswordPattern),
		masq.WithRegex(urlCredentialPattern),
	)

	return masq.New(opts...)
}
