package services

// stubConfig is a minimal in-memory config store for Configure tests.
type stubConfig map[string]int

func (c stubConfig) Get(key string) (any, bool) {
	v, ok := c[key]
	return v, ok
}

func (c stubConfig) GetString(string) string { return "" }

func (c stubConfig) GetInt(key string) int { return c[key] }

func (c stubConfig) Set(string, any) error { return nil }

func (c stubConfig) Load() error { return nil }

func (c stubConfig) Path() string { return "" }
