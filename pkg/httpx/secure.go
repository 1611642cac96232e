package httpx

import "github.com/unrolled/secure"

// SecureHeaders adds the usual hardening headers. In development the HSTS
// and host checks are skipped so plain http on localhost keeps working.
func SecureHeaders(isDevelopment bool) Middleware {
	s := secure.New(secure.Options{
		IsDevelopment:         isDevelopment,
		ContentTypeNosniff:    true,
		FrameDeny:             true,
		BrowserXssFilter:      true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		STSSeconds:            31536000,
		STSIncludeSubdomains:  true,
		ContentSecurityPolicy: "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; frame-ancestors 'none'",
	})
	return s.Handler
}
