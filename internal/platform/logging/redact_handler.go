package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveHeaders is the set of HTTP header names (lowercase) whose values
// are credentials. The HTTP middleware redacts them when dumping request
// headers and the log handler redacts attributes of the same name.
var SensitiveHeaders = map[string]bool{
	"authorization":       true,
	"proxy-authorization": true,
	"x-api-key":           true,
	"cookie":              true,
	"set-cookie":          true,
}

// Value patterns caught regardless of attribute name. The listing API token
// is a JWT sent as a bearer credential, so either form may end up in an error
// string or a logged URL.
var (
	bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

	// At least 10 characters per segment keeps version strings like 1.2.3
	// out.
	jwtPattern = regexp.MustCompile(`[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}\.[a-zA-Z0-9\-_]{10,}`)

	// access_token=... or api_key: ... inside a query string or message.
	inlineCredentialPattern = regexp.MustCompile(`(?i)(access[_\-]?token|api[_\-]?key|apikey)\s*[:=]\s*[^&\s]+`)
)

// sensitiveFields are attribute names redacted outright.
var sensitiveFields = []string{"password", "secret", "token", "credential"}

// sensitivePrefixes catch variations such as "token_expiry" or "secret_key".
var sensitivePrefixes = []string{"secret_", "api_key", "token_"}

// newRedactAttr returns a masq ReplaceAttr function for slog.HandlerOptions.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, len(SensitiveHeaders)+len(sensitiveFields)+len(sensitivePrefixes)+3)

	for name := range SensitiveHeaders {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, name := range sensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}
	for _, prefix := range sensitivePrefixes {
		opts = append(opts, masq.WithFieldPrefix(prefix))
	}

	opts = append(opts,
		masq.WithRegex(bearerPattern),
		masq.WithRegex(jwtPattern),
		masq.WithRegex(inlineCredentialPattern),
	)

	return masq.New(opts...)
}
