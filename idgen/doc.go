// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package idgen supplies the shared random source that trace and span
identifiers are drawn from.  Identifiers are uniformly random 64-bit values;
no uniqueness is guaranteed beyond the statistics of the draw.
*/
package idgen
