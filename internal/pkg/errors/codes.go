package errors

// Error code constants.
// Errors carry code + params; the CLI prints them, logs stay in English.

// Configuration error codes.
const (
	CodeConfigInvalid     = "CONFIG_INVALID"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
)

// Resource loading error codes.
const (
	CodeReferenceMissing  = "REFERENCE_LOCALE_MISSING"
	CodeLocaleLoadFailed  = "LOCALE_LOAD_FAILED"
	CodeResourceMalformed = "RESOURCE_MALFORMED"
)

// Source scanning error codes.
const (
	CodeSourceScanFailed = "SOURCE_SCAN_FAILED"
	CodeGlobInvalid      = "GLOB_INVALID"
)

// Convenience constructors using predefined codes.

// ErrConfigInvalidf creates a configuration validation error for key.
func ErrConfigInvalidf(key, reason string) *AppError {
	return New(CodeConfigInvalid, key+": "+reason).
		WithParams(map[string]interface{}{"key": key})
}

// ErrUnsupportedFormatf creates an error for an unknown resource or report format.
func ErrUnsupportedFormatf(format string) *AppError {
	return Wrap(ErrUnsupported, CodeUnsupportedFormat, "unsupported format: "+format).
		WithParams(map[string]interface{}{"format": format})
}

// ErrReferenceMissingf creates the fatal error for an absent reference locale.
func ErrReferenceMissingf(locale, dir string) *AppError {
	return Wrap(ErrNotFound, CodeReferenceMissing, "reference locale directory not found").
		WithParams(map[string]interface{}{"locale": locale, "dir": dir})
}
