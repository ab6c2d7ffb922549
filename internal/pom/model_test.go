package pom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pomedit/internal/model"
)

const projectPOM = `<project>
  <modelVersion>4.0.0</modelVersion>
  <groupId>g</groupId>
  <artifactId>a</artifactId>
  <name>n</name>
  <dependencies>
    <dependency>
      <groupId>x</groupId>
      <artifactId>y</artifactId>
    </dependency>
  </dependencies>
</project>`

func TestModel_Scalars(t *testing.T) {
	doc := load(t, projectPOM)
	m := NewModel(doc.Root())

	packaging, err := m.GetPackaging()
	require.NoError(t, err)
	assert.Equal(t, "jar", packaging)

	require.NoError(t, m.SetVersion("1.0"))
	require.NoError(t, m.SetPackaging("pom"))
	require.NoError(t, m.SetName(""))

	want := `<project>
  <modelVersion>4.0.0</modelVersion>
  <groupId>g</groupId>
  <artifactId>a</artifactId>
  <version>1.0</version>
  <packaging>pom</packaging>
  <dependencies>
    <dependency>
      <groupId>x</groupId>
      <artifactId>y</artifactId>
    </dependency>
  </dependencies>
</project>`
	assert.Equal(t, want, render(t, doc))

	v, err := m.GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "1.0", v)

	assertUnsupported(t, m.SetBuild(&model.BuildBase{}))
	_, err = m.GetRepositories()
	assertUnsupported(t, err)
	_, err = m.GetReporting()
	assertUnsupported(t, err)
}

func TestModel_Parent(t *testing.T) {
	doc := load(t, projectPOM)
	m := NewModel(doc.Root())

	p := m.Parent()
	assert.False(t, p.Exists())
	assert.Nil(t, p.Snapshot())
	g, err := p.GetGroupID()
	require.NoError(t, err)
	assert.Empty(t, g)

	require.NoError(t, p.SetVersion(""))
	assert.False(t, p.Exists(), "clearing an absent field does not create the element")

	require.NoError(t, m.SetParent(&model.Parent{GroupID: "org", ArtifactID: "parent", Version: "7"}))
	assert.Equal(t, &model.Parent{GroupID: "org", ArtifactID: "parent", Version: "7"}, m.Parent().Snapshot())

	want := `<project>
  <modelVersion>4.0.0</modelVersion>
  <parent>
    <groupId>org</groupId>
    <artifactId>parent</artifactId>
    <version>7</version>
  </parent>
  <groupId>g</groupId>`
	assert.Contains(t, render(t, doc), want)

	require.NoError(t, m.SetParent(nil))
	assert.Equal(t, projectPOM, render(t, doc))
}

func TestModel_Build(t *testing.T) {
	doc := load(t, "<project>\n  <artifactId>a</artifactId>\n  <profiles/>\n</project>")
	b := NewModel(doc.Root()).Build()

	require.NoError(t, b.SetFinalName("app"))
	require.NoError(t, b.SetDefaultGoal("install"))

	want := `<project>
  <artifactId>a</artifactId>
  <build>
    <defaultGoal>install</defaultGoal>
    <finalName>app</finalName>
  </build>
  <profiles/>
</project>`
	assert.Equal(t, want, render(t, doc))

	name, err := b.GetFinalName()
	require.NoError(t, err)
	assert.Equal(t, "app", name)
}

func TestModel_Properties(t *testing.T) {
	doc := load(t, "<project>\n  <properties>\n    <a>1</a>\n  </properties>\n</project>")
	props := NewModel(doc.Root()).Properties()

	require.NoError(t, props.Set("b", "2"))
	require.NoError(t, props.Set("a", "3"))
	assert.Equal(t, "<project>\n  <properties>\n    <a>3</a>\n    <b>2</b>\n  </properties>\n</project>", render(t, doc))
	assert.Equal(t, []string{"a", "b"}, props.Names())
	assert.Equal(t, 2, props.Len())

	v, ok := props.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	assert.Error(t, props.Set("bad name", "x"))
	assert.False(t, props.Remove("missing"))
	assert.True(t, props.Remove("a"))
	assert.True(t, props.Remove("b"))
	assert.False(t, props.Exists())
	assert.Equal(t, "<project>\n</project>", render(t, doc))

	require.NoError(t, props.Set("java.version", "21"))
	assert.Equal(t, "<project>\n  <properties>\n    <java.version>21</java.version>\n  </properties>\n</project>", render(t, doc))
}

func TestModel_DependencyManagementMaterializesBeforeDependencies(t *testing.T) {
	doc := load(t, `<project>
  <dependencies>
    <dependency>
      <groupId>g</groupId>
    </dependency>
  </dependencies>
</project>`)
	m := NewModel(doc.Root())
	dm := m.DependencyManagement()
	assert.False(t, dm.Exists())

	require.NoError(t, dm.Dependencies().Add(&model.Dependency{GroupID: "m", ArtifactID: "n", Version: "2"}))

	want := `<project>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>m</groupId>
        <artifactId>n</artifactId>
        <version>2</version>
      </dependency>
    </dependencies>
  </dependencyManagement>
  <dependencies>
    <dependency>
      <groupId>g</groupId>
    </dependency>
  </dependencies>
</project>`
	assert.Equal(t, want, render(t, doc))

	require.NoError(t, m.SetDependencyManagement(nil))
	assert.False(t, m.DependencyManagement().Exists())
	assert.Equal(t, 1, m.Dependencies().Len())
}

func TestModel_SetCollections(t *testing.T) {
	doc := load(t, projectPOM)
	m := NewModel(doc.Root())

	require.NoError(t, m.SetModules([]string{"core", "cli"}))
	mods, err := m.GetModules()
	require.NoError(t, err)
	assert.Equal(t, []string{"core", "cli"}, mods)

	require.NoError(t, m.SetDependencies([]model.Dependency{{GroupID: "x", ArtifactID: "z"}}))
	deps, err := m.GetDependencies()
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, "z", deps[0].ArtifactID)

	require.NoError(t, m.SetDependencies(nil))
	assert.True(t, m.Dependencies().IsVirtual())

	require.NoError(t, m.SetModules(nil))
	assert.True(t, m.Modules().IsVirtual())

	assert.Equal(t, "<project>\n  <modelVersion>4.0.0</modelVersion>\n  <groupId>g</groupId>\n  <artifactId>a</artifactId>\n  <name>n</name>\n</project>", render(t, doc))
}

func TestModel_EditObserver(t *testing.T) {
	doc := load(t, projectPOM)
	var edits []string
	m := NewModel(doc.Root(), WithEditObserver(func(collection, op string) {
		edits = append(edits, collection+":"+op)
	}))

	require.NoError(t, m.Dependencies().Add(&model.Dependency{GroupID: "a", ArtifactID: "b"}))
	require.NoError(t, m.Profiles().Add(&model.Profile{ID: "p"}))
	_, err := m.Dependencies().Remove(&model.Dependency{GroupID: "x", ArtifactID: "y"})
	require.NoError(t, err)
	require.NoError(t, m.Properties().Set("k", "v"))

	assert.Equal(t, []string{"dependencies:add", "profiles:add", "dependencies:remove", "properties:add"}, edits)
}

func TestModel_SetModulesRejectsBeforeMutation(t *testing.T) {
	input := "<project>\n  <modules>\n    <module>core</module>\n  </modules>\n</project>"
	doc := load(t, input)
	m := NewModel(doc.Root())

	assertValidationError(t, m.SetModules([]string{"x", ""}))
	assertValidationError(t, m.Modules().AddAll("c", "  "))

	mods, err := m.GetModules()
	require.NoError(t, err)
	assert.Equal(t, []string{"core"}, mods)
	assert.Equal(t, input, render(t, doc))
}
