// Package domain defines the ports exposed by the gatherers registry
package domain

// InspectorPort lists the registered gatherers for diagnostics, one line per
// name summarizing its versions ("checker - v1/v2"). Name order unspecified
type InspectorPort interface {
	List() []string
}
