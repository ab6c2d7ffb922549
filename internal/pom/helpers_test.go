package pom

import (
	stderrors "errors"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
	"git.home.luguber.info/inful/pomedit/internal/xmltree"
)

func load(t *testing.T, content string) *xmltree.Parsed {
	t.Helper()
	p, err := xmltree.Parse([]byte(content))
	require.NoError(t, err)
	return p
}

func render(t *testing.T, doc *xmltree.Parsed) string {
	t.Helper()
	out, err := doc.Serialize("\n")
	require.NoError(t, err)
	return string(out)
}

func assertUnsupported(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, stderrors.ErrUnsupported)
	assert.True(t, errors.HasCategory(err, errors.CategoryUnsupported), "category of %v", err)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation), "category of %v", err)
	assert.NotErrorIs(t, err, stderrors.ErrUnsupported)
}

// documentKeys scans the tree for the identity keys of the item elements of a run, for
// comparing a collection's cache with the document.
func documentKeys(container *etree.Element, itemTag string, key func(*etree.Element) string) []string {
	var keys []string
	if container == nil {
		return keys
	}
	for _, el := range container.ChildElements() {
		if el.Tag == itemTag {
			keys = append(keys, key(el))
		}
	}
	return keys
}
