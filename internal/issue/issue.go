// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

const (
	// InvalidOperandsId explains rejected base/exponent values.
	InvalidOperandsId Id = iota + 1
	// ExponentTooLargeId explains the configured exponent ceiling.
	ExponentTooLargeId
	// ConfigLoadFailedId explains configuration file problems.
	ConfigLoadFailedId
	// ServerStartFailedId explains why the web server could not bind.
	ServerStartFailedId
	// WasmModuleMissingId explains how to build the WebAssembly module.
	WasmModuleMissingId
)

type (
	// Id identifies a known issue.
	Id int

	// MarkdownMsg is Markdown guidance shown to the user.
	MarkdownMsg string

	// Issue is a known failure kind with guidance.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
	}
)

var (
	render = glamour.Render

	issues = map[Id]*Issue{
		InvalidOperandsId: {
			id: InvalidOperandsId,
			mdMsg: `
# Invalid operands

The base must be a positive integer and the exponent must not be negative.

## Examples
~~~
$ powcalc pow 2 10
$ powcalc pow 3 50
~~~`,
		},
		ExponentTooLargeId: {
			id: ExponentTooLargeId,
			mdMsg: `
# Exponent above the configured limit

Exact results grow with the exponent, so a ceiling can be configured.

## Things you can try
- Raise or remove the limit in your config file:
~~~cue
limits: {
	max_exponent: 0 // no limit
}
~~~
- Ask only for the digit count: ` + "`powcalc pow --digits-only`",
		},
		ConfigLoadFailedId: {
			id: ConfigLoadFailedId,
			mdMsg: `
# Failed to load configuration

## Things you can try
- Print the effective configuration:
~~~
$ powcalc config show
~~~
- Recreate the default file:
~~~
$ powcalc config init
~~~`,
		},
		ServerStartFailedId: {
			id: ServerStartFailedId,
			mdMsg: `
# Web server did not start

## Things you can try
- Pick another address: ` + "`powcalc serve --addr 127.0.0.1:9090`" + `
- Check that no other process listens on the port`,
		},
		WasmModuleMissingId: {
			id: WasmModuleMissingId,
			mdMsg: `
# WebAssembly module not found

Build it next to the served directory:
~~~
$ GOOS=wasip1 GOARCH=wasm go build -buildmode=c-shared -o web/powcalc.wasm ./cmd/powcalc-wasm
~~~`,
		},
	}
)

// Id returns the issue identifier.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw Markdown guidance.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the guidance for a terminal using the given glamour style
// ("dark", "light", "notty", "auto" or a JSON style path).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(strings.TrimSpace(string(i.mdMsg)), stylePath)
}

// Values returns every known issue ordered by Id.
func Values() []*Issue {
	ids := slices.Sorted(maps.Keys(issues))
	out := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		out = append(out, issues[id])
	}
	return out
}

// Get returns the issue for id, or nil when unknown.
func Get(id Id) *Issue {
	return issues[id]
}
