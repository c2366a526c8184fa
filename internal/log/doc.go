// Package log provides secure logging functionality with automatic sanitization
// of sensitive information, built on top of the standard slog package.
//
// The documents bbsdocs renders are shared outside the finance pillar, and
// so are the logs produced while rendering them. The SecureHandler masks:
//   - Banking details (account and transit numbers, card numbers)
//   - Contact details (e-mail addresses anywhere in a value, phone numbers)
//   - Identity numbers (SIN) and authentication secrets
//
// Even in verbose mode, sensitive values are masked.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, true) // verbose=true
//	logger.Info("document written",
//	    "path", "/tmp/BBS-BANKING-OPTIONS-SHAAN.pdf",
//	    "account", "1234567", // Will be masked
//	)
package log
