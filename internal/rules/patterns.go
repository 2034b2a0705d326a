package rules

import "regexp"

var (
	durationPattern   = regexp.MustCompile(`(?i)^\d+\s*(?:second|minute|hour|week)s?$`)
	urlPattern        = regexp.MustCompile(`(?i)^(?:https?|ftp)://\S+$`)
	pathPattern       = regexp.MustCompile(`^(?:\\\\|[A-Za-z]:\\)`)
	shortcutPattern   = regexp.MustCompile(`(?i)^(?:ctrl|cmd|alt|shift|meta|win)(?:\s*\+\s*[\w.,/\[\]-]+)+$`)
	semverPattern     = regexp.MustCompile(`^v?\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z.-]+)?(?:\+[0-9A-Za-z.-]+)?$`)
	numberPattern     = regexp.MustCompile(`^\d+(?:[.,]\d+)?\s*(?:GB|TB|MB|KB|ms|s|%)?$`)
	envVarPattern     = regexp.MustCompile(`\$\{?[A-Za-z_][A-Za-z0-9_]*\}?|%[A-Za-z_][A-Za-z0-9_]*%`)
	executablePattern = regexp.MustCompile(`(?i)^\S+\.exe$`)
	cliFlagPattern    = regexp.MustCompile(`--[A-Za-z][\w-]*\s`)
	emailPattern      = regexp.MustCompile(`^[\w.+-]+@[\w-]+(?:\.[\w-]+)+$`)

	titleWordPattern = regexp.MustCompile(`^[A-Z][\p{L}\d'&.-]*$`)
)
