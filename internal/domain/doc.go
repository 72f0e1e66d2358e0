// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/stage). This root package
// holds the sentinel errors and the validation error type that every layer
// above the domain inspects with errors.Is / errors.As.
package domain
