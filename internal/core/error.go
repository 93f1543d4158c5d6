package core

import "fmt"

// ConfigError reports malformed configuration: an invalid page list, a bad
// page entry or a missing template for a non-HTML entry.
type ConfigError struct {
	Page    string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	msg := e.Message
	if e.Page != "" {
		msg = fmt.Sprintf("%s is invalid page; %s", e.Page, e.Message)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NotFoundError reports a referenced template or source file that is absent
// on disk.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return "not found " + e.Path
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// TransformError reports an HTML document that could not be transformed.
type TransformError struct {
	File string
	Err  error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform %s: %v", e.File, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}
