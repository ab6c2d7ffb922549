package pom

import (
	"strings"

	"github.com/beevik/etree"

	"git.home.luguber.info/inful/pomedit/internal/foundation/errors"
)

// Modules is the live list of <module> entries. Removing the last module removes the
// <modules> block.
type Modules struct {
	*elementRun[string, string]
}

var modulesSpec = &runSpec[string, string]{
	typeName:     "Modules",
	containerTag: "modules",
	itemTag:      "module",
	collapse:     true,
	wrap:         moduleText,
	keyOf: func(m string) (string, error) {
		return strings.TrimSpace(m), nil
	},
	itemKey: moduleText,
	classify: func(m string) (addEntry, error) {
		m = strings.TrimSpace(m)
		if m == "" {
			return addEntry{}, errors.ValidationError("module path is empty").
				WithContext("operation", "Modules.Add").
				Build()
		}
		return addEntry{fill: func(el *etree.Element) { el.SetText(m) }}, nil
	},
}

func newModules(owner resolver, onEdit EditFunc) *Modules {
	return &Modules{newElementRun(modulesSpec, owner, onEdit)}
}

func moduleText(el *etree.Element) string {
	return strings.TrimSpace(el.Text())
}

// Replace clears the list and adds modules in order. An empty list leaves no <modules>
// block behind. Nothing changes when any entry is rejected.
func (l *Modules) Replace(modules []string) error {
	return l.replace(modules)
}
