package spec

import (
	"strings"
)

// Fallback values used when free-text input does not contain a section.
const (
	DefaultName        = "my-app"
	DefaultDescription = "Generated application"
)

// DefaultFeatures is the feature list assumed when the input names none.
var DefaultFeatures = []string{"User management", "Basic CRUD operations"}

// ParseText turns unstructured, line-oriented text into an AppRequirement.
//
// The scan is order-preserving: the first line containing "name:" supplies the
// app name (text after the first colon), likewise for "description:"; a line
// containing "features:" starts the feature section and every subsequent line
// beginning with "-" contributes one feature until the end of input. No
// tables, endpoints or components are ever extracted from free text; supply
// those directly on the requirement instead.
//
// This parser is a deliberate placeholder for a smarter requirement
// extractor; callers should not depend on more than the behavior above.
func ParseText(input string) *AppRequirement {
	req := &AppRequirement{
		Name:        DefaultName,
		Description: DefaultDescription,
	}

	var lines []string
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	nameFound, descFound := false, false
	inFeatures := false

	for _, line := range lines {
		lower := strings.ToLower(line)

		switch {
		case !nameFound && strings.Contains(lower, "name:"):
			req.Name = afterColon(line)
			nameFound = true
			inFeatures = false
		case !descFound && strings.Contains(lower, "description:"):
			req.Description = afterColon(line)
			descFound = true
			inFeatures = false
		case strings.Contains(lower, "features:"):
			inFeatures = true
		case inFeatures && strings.HasPrefix(line, "-"):
			feature := strings.TrimSpace(strings.TrimPrefix(line, "-"))
			if feature != "" {
				req.Features = append(req.Features, feature)
			}
		}
	}

	if len(req.Features) == 0 {
		req.Features = append([]string(nil), DefaultFeatures...)
	}

	return req
}

// afterColon returns the trimmed text after the first colon in line, empty
// when nothing follows it.
func afterColon(line string) string {
	idx := strings.Index(line, ":")
	if idx < 0 || idx == len(line)-1 {
		return ""
	}
	return strings.TrimSpace(line[idx+1:])
}
