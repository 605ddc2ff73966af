// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error reporting: a catalog of known
// failure conditions rendered as styled markdown, and the ActionableError
// type carrying operation/resource context plus fix suggestions.
package issue
