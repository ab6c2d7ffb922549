package xmltree

// canonicalOrder lists, per parent tag, the order in which the POM schema expects child
// elements. New children are inserted before the first existing sibling that the table
// places after them; tags missing from the table are appended.
var canonicalOrder = map[string][]string{
	"project": {
		"modelVersion", "parent", "groupId", "artifactId", "version", "packaging", "name",
		"description", "url", "inceptionYear", "organization", "licenses", "developers",
		"contributors", "mailingLists", "prerequisites", "modules", "scm", "issueManagement",
		"ciManagement", "distributionManagement", "properties", "dependencyManagement",
		"dependencies", "repositories", "pluginRepositories", "build", "reporting", "profiles",
	},
	"profile": {
		"id", "activation", "build", "modules", "distributionManagement", "properties",
		"dependencyManagement", "dependencies", "repositories", "pluginRepositories", "reporting",
	},
	"dependency": {
		"groupId", "artifactId", "version", "type", "classifier", "scope", "systemPath",
		"exclusions", "optional",
	},
	"parent": {
		"groupId", "artifactId", "version", "relativePath",
	},
	"exclusion": {
		"groupId", "artifactId",
	},
	"build": {
		"defaultGoal", "directory", "finalName", "sourceDirectory", "scriptSourceDirectory",
		"testSourceDirectory", "outputDirectory", "testOutputDirectory", "extensions",
		"resources", "testResources", "filters", "pluginManagement", "plugins",
	},
}

// orderIndex returns the position of tag among parentTag's canonical children.
func orderIndex(parentTag, tag string) (int, bool) {
	for i, t := range canonicalOrder[parentTag] {
		if t == tag {
			return i, true
		}
	}
	return 0, false
}
