// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package propagationhttp bridges the propagation codecs to http.Header
carriers and supplies server middleware and a client decorator that move
span contexts across HTTP boundaries.  Header names are case-insensitive:
writes go through http.Header.Set, which canonicalizes, and reads lower-case
each name before handing it to the codec.
*/
package propagationhttp
