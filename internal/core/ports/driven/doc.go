// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ScriptRunner: Executes a generated AppleScript in an external
//     interpreter process under a time budget
//
// # Optional Interfaces
//
//   - ConfigStore: Application configuration; defaults apply without it
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
