package domain

// Credentials identify the account used to connect to the remote search service.
// Params carries client options the indexer does not interpret.
type Credentials struct {
	ApplicationID string
	APIKey        string
	Params        map[string]any
}

// Param returns a passthrough parameter as a string, or "" when absent
func (c Credentials) Param(name string) string {
	v, ok := c.Params[name]
	if !ok || v == nil {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}
