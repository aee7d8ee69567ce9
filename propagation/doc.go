// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package propagation converts span contexts to and from wire carriers.  Two
encodings are provided: the minimal-variant text encoding with base-10
identifiers, and the B3 hex header encoding.  Both are driven by an explicit
per-field policy table: a mandatory field that is absent or unparsable
aborts the whole decode with a single classified error, while an optional
field falls back to its default.  Encoding is total and cannot fail, and a
failed decode never yields a partially populated context.
*/
package propagation
