// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package spancontext models the identity a span carries across process
boundaries: its trace and span identifiers, its sampling disposition, and
its baggage.  Two concrete variants exist.  Basic is the minimal form with a
64-bit trace identifier and a boolean sampling disposition.  B3 aligns with
B3-style propagation, adding an optional 128-bit trace identifier, an
optional parent span, and a small flag set.

Contexts are immutable values.  Derivation, performed by an Environment,
always produces a new context; baggage updates copy on write.
*/
package spancontext
