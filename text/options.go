package text

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

type sourceConfig struct {
	name string
}

// WithName overrides the name reported by FontSource.Name.
// NewFontSourceFromFile uses it to identify sources by file path in logs.
func WithName(name string) SourceOption {
	return func(c *sourceConfig) {
		c.name = name
	}
}
