// Package file provides a file-based implementation of the ConfigStore
// driven port, persisting configuration as TOML.
package file
