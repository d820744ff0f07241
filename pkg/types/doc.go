// Package types defines the entity records, gateway event types, the Store
// interface, and standard errors for the Icebox assistant.
// See docs/ARCHITECTURE.md § Main Interface.
package types
