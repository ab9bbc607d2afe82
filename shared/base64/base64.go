package base64

import "strings"

// GetContentType extracts the MIME type from a base64 data URL, e.g.
// "data:image/png;base64,..." yields "image/png". Anything that does not
// look like a data URL yields an empty string.
func GetContentType(file string) string {
	rest, found := strings.CutPrefix(file, "data:")
	if !found {
		return ""
	}

	contentType, _, found := strings.Cut(rest, ";base64,")
	if !found {
		return ""
	}

	return contentType
}
