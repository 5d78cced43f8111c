// Package services implements the driving ports by composing the
// applescript builder and codec with a driven.ScriptRunner.
package services
