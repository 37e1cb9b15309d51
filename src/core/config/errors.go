package config

import "fmt"

// ConfigParseError reports a node config source that could not be read or
// decoded. It is fatal at startup; the underlying cause is preserved for
// errors.Is/As.
type ConfigParseError struct {
	Err error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("error with the JSON of the config: %v", e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// IncompleteEndpointError reports a hub endpoint given as a host/port pair
// with one half missing. Missing names the absent field.
type IncompleteEndpointError struct {
	Missing string
}

func (e *IncompleteEndpointError) Error() string {
	return fmt.Sprintf("you must specify %s when the hub URL is not set", e.Missing)
}

// InvalidEndpointError reports a hub value that does not parse as a URL.
type InvalidEndpointError struct {
	Raw string
	Err error
}

func (e *InvalidEndpointError) Error() string {
	return fmt.Sprintf("hub must be a valid url: %q", e.Raw)
}

func (e *InvalidEndpointError) Unwrap() error {
	return e.Err
}

// LegacyConfigShapeError reports a config document using the retired flat
// "configuration" object. The legacy shape is never migrated automatically.
type LegacyConfigShapeError struct{}

func (e *LegacyConfigShapeError) Error() string {
	return `legacy node config detected: the "configuration" object is no longer supported, move its entries to top-level keys`
}
