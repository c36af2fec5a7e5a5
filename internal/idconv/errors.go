// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package idconv

import (
	"fmt"
	"strings"
)

// ResolutionError reports that the id converter could not map a document
// id to its identifier triple.
type ResolutionError struct {
	ID        string
	Namespace Namespace
	Reason    string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %s id %q: %s", e.Namespace, e.ID, e.Reason)
}

// UnsupportedNamespaceError reports an operation invoked with a
// namespace it does not accept.
type UnsupportedNamespaceError struct {
	Namespace Namespace
	Supported []Namespace
}

func (e *UnsupportedNamespaceError) Error() string {
	names := make([]string, len(e.Supported))
	for i, ns := range e.Supported {
		names[i] = ns.String()
	}
	return fmt.Sprintf("unsupported namespace %q (supported: %s)", e.Namespace, strings.Join(names, ", "))
}
