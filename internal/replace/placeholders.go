package replace

import (
	"fmt"
	"regexp"
	"time"
)

// Context holds the values for placeholder expansion.
type Context struct {
	Version     string // version being released
	PrevVersion string // previous release version
	Name        string // project name
	Date        string // release date, YYYY-MM-DD
	TagName     string // tag-prefix + version
}

// NewContext builds an expansion context with today's date.
func NewContext(version, prevVersion, name, tagName string) Context {
	return Context{
		Version:     version,
		PrevVersion: prevVersion,
		Name:        name,
		Date:        time.Now().Format("2006-01-02"),
		TagName:     tagName,
	}
}

// placeholderRegex matches {{key}} patterns.
var placeholderRegex = regexp.MustCompile(`\{\{([a-z_]+)\}\}`)

// Expand substitutes all placeholders in template.
// An unrecognized placeholder is an error rather than passing through
// silently, so typos surface at check time instead of in file contents.
func (c Context) Expand(template string) (string, error) {
	var unknown string
	result := placeholderRegex.ReplaceAllStringFunc(template, func(m string) string {
		key := placeholderRegex.FindStringSubmatch(m)[1]
		switch key {
		case "version":
			return c.Version
		case "prev_version":
			return c.PrevVersion
		case "name":
			return c.Name
		case "date":
			return c.Date
		case "tag_name":
			return c.TagName
		default:
			if unknown == "" {
				unknown = key
			}
			return m
		}
	})
	if unknown != "" {
		return "", fmt.Errorf("unknown placeholder {{%s}}", unknown)
	}
	return result, nil
}
