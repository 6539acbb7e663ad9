// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package konsole

import (
	"fmt"
	"strconv"
)

// Stock Show renderings.
//
// These cover the values console programs commonly print. Anything else
// participates by supplying its own Show function; there is no reflective
// fallback.

// ShowString is the identity rendering for text.
func ShowString(s string) string { return s }

// ShowBool renders a bool as "true" or "false".
func ShowBool(b bool) string { return strconv.FormatBool(b) }

// ShowInt renders an int in base 10.
func ShowInt(n int) string { return strconv.Itoa(n) }

// ShowInt64 renders an int64 in base 10.
func ShowInt64(n int64) string { return strconv.FormatInt(n, 10) }

// ShowFloat64 renders a float64 in the shortest form that round-trips.
func ShowFloat64(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }

// ShowStringer renders any fmt.Stringer via its String method.
func ShowStringer[T fmt.Stringer](v T) string { return v.String() }
