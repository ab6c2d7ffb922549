package pom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pomedit/internal/model"
	"git.home.luguber.info/inful/pomedit/internal/xmltree"
)

func TestDependency_WithoutElement(t *testing.T) {
	d := NewDependency(nil)

	assert.Equal(t, "dependency", d.Name())

	_, err := d.GetScope()
	assertValidationError(t, err)
	_, err = d.GetType()
	assertValidationError(t, err)
	_, err = d.IsOptional()
	assertValidationError(t, err)
	_, err = d.GetExclusions()
	assertValidationError(t, err)
	assertValidationError(t, d.SetOptional(true))
	assertValidationError(t, d.SetClassifier(""))
	assertValidationError(t, d.SetSystemPath(""))
	assertValidationError(t, d.SetExclusions(nil))

	assertUnsupported(t, d.AddExclusion(model.Exclusion{}))
	assertUnsupported(t, d.RemoveExclusion(model.Exclusion{}))
}

func TestDependency_Getters(t *testing.T) {
	doc := load(t, "<dependency></dependency>")
	d := NewDependency(doc.Root())

	for _, get := range []func() (string, error){d.GetGroupID, d.GetArtifactID, d.GetVersion, d.GetClassifier} {
		v, err := get()
		require.NoError(t, err)
		assert.Empty(t, v)
	}

	typ, err := d.GetType()
	require.NoError(t, err)
	assert.Equal(t, "jar", typ)
	scope, err := d.GetScope()
	require.NoError(t, err)
	assert.Equal(t, "compile", scope)

	doc = load(t, "<dependency><groupId>GROUPID</groupId><artifactId> ARTIFACTID </artifactId><version>VERSION</version><optional>true</optional></dependency>")
	d = NewDependency(doc.Root())

	g, _ := d.GetGroupID()
	a, _ := d.GetArtifactID()
	v, _ := d.GetVersion()
	opt, _ := d.IsOptional()
	assert.Equal(t, "GROUPID", g)
	assert.Equal(t, "ARTIFACTID", a)
	assert.Equal(t, "VERSION", v)
	assert.True(t, opt)
}

func TestDependency_SettersReplaceText(t *testing.T) {
	doc := load(t, "<dependency><groupId>OLD_GROUPID</groupId><artifactId>OLD_ARTIFACTID</artifactId><version>OLD_VERSION</version></dependency>")
	d := NewDependency(doc.Root())

	require.NoError(t, d.SetGroupID("NEW_GROUPID"))
	require.NoError(t, d.SetArtifactID("NEW_ARTIFACTID"))
	require.NoError(t, d.SetVersion("NEW_VERSION"))

	for field, want := range map[string]string{
		"groupId":    "NEW_GROUPID",
		"artifactId": "NEW_ARTIFACTID",
		"version":    "NEW_VERSION",
	} {
		got, ok := xmltree.ChildText(doc.Root(), field)
		assert.True(t, ok, field)
		assert.Equal(t, want, got, field)
	}
}

func TestDependency_SetArtifactIDOnEmptyElement(t *testing.T) {
	input := `<project>
  <dependencies>
    <dependency></dependency>
    <dependency>
      <groupId>g</groupId>
    </dependency>
  </dependencies>
</project>`
	doc := load(t, input)
	deps := NewModel(doc.Root()).Dependencies()
	d := deps.Get(0)

	a, err := d.GetArtifactID()
	require.NoError(t, err)
	assert.Empty(t, a)

	require.NoError(t, d.SetArtifactID("NEW_ARTIFACTID"))

	got, ok := xmltree.ChildText(d.Element(), "artifactId")
	require.True(t, ok)
	assert.Equal(t, "NEW_ARTIFACTID", got)

	want := `<project>
  <dependencies>
    <dependency>
      <artifactId>NEW_ARTIFACTID</artifactId>
    </dependency>
    <dependency>
      <groupId>g</groupId>
    </dependency>
  </dependencies>
</project>`
	assert.Equal(t, want, render(t, doc))
}

func TestDependency_OptionalAndClearing(t *testing.T) {
	doc := load(t, "<dependency>\n  <groupId>g</groupId>\n  <scope>test</scope>\n</dependency>")
	d := NewDependency(doc.Root())

	require.NoError(t, d.SetOptional(true))
	require.NoError(t, d.SetScope(""))
	require.NoError(t, d.SetVersion("1"))

	assert.Equal(t, "<dependency>\n  <groupId>g</groupId>\n  <version>1</version>\n  <optional>true</optional>\n</dependency>", render(t, doc))

	require.NoError(t, d.SetOptional(false))
	assert.Equal(t, "<dependency>\n  <groupId>g</groupId>\n  <version>1</version>\n</dependency>", render(t, doc))
}

func TestDependency_Exclusions(t *testing.T) {
	doc := load(t, "<dependency>\n  <groupId>g</groupId>\n  <optional>true</optional>\n</dependency>")
	d := NewDependency(doc.Root())

	require.NoError(t, d.SetExclusions([]model.Exclusion{{GroupID: "x", ArtifactID: "y"}}))

	want := `<dependency>
  <groupId>g</groupId>
  <exclusions>
    <exclusion>
      <groupId>x</groupId>
      <artifactId>y</artifactId>
    </exclusion>
  </exclusions>
  <optional>true</optional>
</dependency>`
	assert.Equal(t, want, render(t, doc))

	got, err := d.GetExclusions()
	require.NoError(t, err)
	assert.Equal(t, []model.Exclusion{{GroupID: "x", ArtifactID: "y"}}, got)

	require.NoError(t, d.SetExclusions(nil))
	assert.Equal(t, "<dependency>\n  <groupId>g</groupId>\n  <optional>true</optional>\n</dependency>", render(t, doc))
}

func TestDependency_Value(t *testing.T) {
	doc := load(t, "<dependency><groupId>g</groupId><artifactId>a</artifactId><classifier>tests</classifier></dependency>")

	v, err := NewDependency(doc.Root()).Value()
	require.NoError(t, err)
	assert.Equal(t, model.Dependency{
		GroupID:    "g",
		ArtifactID: "a",
		Type:       "jar",
		Classifier: "tests",
		Scope:      "compile",
	}, v)
}
