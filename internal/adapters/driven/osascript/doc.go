// Package osascript runs generated AppleScripts in the macOS script
// interpreter. It implements driven.ScriptRunner.
package osascript
