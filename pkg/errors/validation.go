package errors

import (
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// packageNameRegex matches valid Debian binary package names as accepted on
// the command line: letters, digits, dot, underscore and hyphen.
var packageNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// ValidatePackageName validates the name of the package under analysis.
func ValidatePackageName(name string) (string, error) {
	if name == "" {
		return "", New(ErrCodeInvalidPackage, "package name cannot be empty")
	}
	if !packageNameRegex.MatchString(name) {
		return "", New(ErrCodeInvalidPackage, "invalid package name %q: only letters, digits, '.', '_' and '-' are allowed", name)
	}
	return name, nil
}

// ValidateRepository validates a repository location. It accepts either an
// existing local path (returned as an absolute path) or a URL with both a
// scheme and a host.
func ValidateRepository(urlOrPath string) (string, error) {
	if urlOrPath == "" {
		return "", New(ErrCodeInvalidRepository, "repository cannot be empty")
	}
	if _, err := os.Stat(urlOrPath); err == nil {
		abs, err := filepath.Abs(urlOrPath)
		if err != nil {
			return "", Wrap(ErrCodeInvalidRepository, err, "resolve repository path %q", urlOrPath)
		}
		return abs, nil
	}
	if u, err := url.Parse(urlOrPath); err == nil && u.Scheme != "" && u.Host != "" {
		return urlOrPath, nil
	}
	return "", New(ErrCodeInvalidRepository, "invalid repository %q: must be an existing path or a valid URL", urlOrPath)
}

// Repository modes accepted by --mode.
const (
	ModeLocal  = "local"
	ModeRemote = "remote"
	ModeMixed  = "mixed"
)

// ValidateMode validates the repository access mode.
func ValidateMode(mode string) (string, error) {
	if mode == "" {
		return "", New(ErrCodeInvalidMode, "mode cannot be empty")
	}
	switch mode {
	case ModeLocal, ModeRemote, ModeMixed:
		return mode, nil
	}
	return "", New(ErrCodeInvalidMode, "invalid mode %q: must be one of %s, %s, %s", mode, ModeLocal, ModeRemote, ModeMixed)
}

// versionRegex matches X.Y or X.Y.Z version strings.
var versionRegex = regexp.MustCompile(`^[0-9]+\.[0-9]+(\.[0-9]+)?$`)

// ValidateVersion validates a package version in X.Y or X.Y.Z form.
func ValidateVersion(version string) (string, error) {
	if version == "" {
		return "", New(ErrCodeInvalidVersion, "version cannot be empty")
	}
	if !versionRegex.MatchString(version) {
		return "", New(ErrCodeInvalidVersion, "invalid version %q: expected X.Y or X.Y.Z", version)
	}
	return version, nil
}

// outputFormats lists the graph file extensions accepted by --output.
// The file itself is never produced; the name is validated and recorded only.
var outputFormats = []string{".png", ".jpg", ".svg"}

// ValidateOutputFile validates the graph output file name.
func ValidateOutputFile(filename string) (string, error) {
	if filename == "" {
		return "", New(ErrCodeInvalidOutput, "output file name cannot be empty")
	}
	for _, ext := range outputFormats {
		if strings.HasSuffix(filename, ext) {
			return filename, nil
		}
	}
	return "", New(ErrCodeInvalidOutput, "invalid output file %q: must end with %s", filename, strings.Join(outputFormats, ", "))
}

// ValidateASCIIMode validates the yes/no flag controlling ASCII tree output.
// The value is matched case-insensitively and returned lowercased.
func ValidateASCIIMode(value string) (string, error) {
	if value == "" {
		return "", New(ErrCodeInvalidInput, "ascii mode cannot be empty")
	}
	lower := strings.ToLower(value)
	if lower != "yes" && lower != "no" {
		return "", New(ErrCodeInvalidInput, "invalid ascii mode %q: must be 'yes' or 'no'", value)
	}
	return lower, nil
}

// ValidateMaxDepth parses and validates the maximum traversal depth.
func ValidateMaxDepth(value string) (int, error) {
	if value == "" {
		return 0, New(ErrCodeInvalidDepth, "max depth cannot be empty")
	}
	depth, err := strconv.Atoi(value)
	if err != nil {
		return 0, New(ErrCodeInvalidDepth, "invalid max depth %q: must be an integer", value)
	}
	if depth <= 0 {
		return 0, New(ErrCodeInvalidDepth, "max depth must be positive, got %d", depth)
	}
	return depth, nil
}

// ValidateFilter validates the package filter substring.
// An empty filter is valid and disables filtering.
func ValidateFilter(substring string) (string, error) {
	if substring == "" {
		return "", nil
	}
	if len(substring) < 2 {
		return "", New(ErrCodeInvalidFilter, "filter must be at least 2 characters long")
	}
	return substring, nil
}
