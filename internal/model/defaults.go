package model

// Default values of POM fields. The write path elides a field equal to its default and the
// read path substitutes the default for an absent field.
const (
	DefaultDependencyType  = "jar"
	DefaultDependencyScope = "compile"
	DefaultPackaging       = "jar"
	DefaultProfileID       = "default"
)

// defaults maps element tag to child tag to default value.
var defaults = map[string]map[string]string{
	"dependency": {
		"type":     DefaultDependencyType,
		"scope":    DefaultDependencyScope,
		"optional": "false",
	},
	"project": {
		"packaging": DefaultPackaging,
	},
	"profile": {
		"id": DefaultProfileID,
	},
}

// Default returns the default for field under an element named tag.
func Default(tag, field string) (string, bool) {
	v, ok := defaults[tag][field]
	return v, ok
}

// IsDefault reports whether value is the documented default of field under tag.
func IsDefault(tag, field, value string) bool {
	v, ok := Default(tag, field)
	return ok && v == value
}

// OrDefault returns value, or the default of field under tag when value is empty.
func OrDefault(tag, field, value string) string {
	if value != "" {
		return value
	}
	v, _ := Default(tag, field)
	return v
}
