// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package sampling defines the decision oracle consulted when a trace begins,
together with the basic sampler implementations and their external
configuration.  A sampler is asked at most once per trace, when the root
context is created; children inherit the decision and never re-sample.
*/
package sampling
