// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	YangerNotFoundId
	GrepScanFailedId
	NoInputFilesId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // reference documentation for the issue
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "](" + string(link) + ")\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Your config.cue contains syntax errors or values the schema rejects.

## Things you can try:
- Check the error message above for the specific field
- Show the resolved configuration path:
~~~
$ yangdomino config path
~~~
- Recreate a default configuration file:
~~~
$ yangdomino config init
~~~`,
	}

	yangerNotFoundIssue = &Issue{
		id: YangerNotFoundId,
		mdMsg: `
# yanger compiler not found!

The default scan strategy invokes the yanger YANG compiler, and it could
not be started.

## Things you can try:
- Install yanger and make sure it is on your PATH
- Point at a specific binary in your config file:
~~~cue
scanner: {
	yanger_path: "/opt/yanger/bin/yanger"
}
~~~
- Fall back to the permissive text scan (not syntax-aware, may be
  less accurate):
~~~
$ yangdomino --use-grep <modules-to-scan>
~~~`,
		docLinks: []HttpLink{"https://github.com/mbj4668/yanger"},
	}

	grepScanFailedIssue = &Issue{
		id: GrepScanFailedId,
		mdMsg: `
# Permissive scan failed!

The external text-search invocation exited with an error. The permissive
strategy has no partial-results tolerance: a failed pass yields nothing.

## Things you can try:
- Verify egrep is installed and on your PATH
- Check that every file passed on the command line exists and is readable
- Note that a scan matching no import/include statements at all also
  fails; double-check you are pointing at YANG module files`,
	}

	noInputFilesIssue = &Issue{
		id: NoInputFilesId,
		mdMsg: `
# No modules to scan!

yangdomino needs the YANG module files to analyze as positional arguments.

## Example invocations:
~~~
$ yangdomino *.yang
$ yangdomino -r ietf-ethertypes *.yang
$ yangdomino -l ~/yang-library -e ./fetched *.yang
~~~`,
	}

	issues = map[Id]*Issue{
		configLoadFailedIssue.Id(): configLoadFailedIssue,
		yangerNotFoundIssue.Id():   yangerNotFoundIssue,
		grepScanFailedIssue.Id():   grepScanFailedIssue,
		noInputFilesIssue.Id():     noInputFilesIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
