// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/listing). This root
// package holds the sentinel errors and the field-level ValidationError that
// every layer uses to classify failures.
package domain
