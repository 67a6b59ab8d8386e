// Package testdata embeds captured inspection sessions used by engine tests.
package testdata

import (
	_ "embed"
)

//go:embed huawei.log
var huaweiLog string

//go:embed h3c.log
var h3cLog string

// Huawei returns a captured Huawei VRP inspection session.
func Huawei() string { return huaweiLog }

// H3C returns a captured H3C Comware inspection session.
func H3C() string { return h3cLog }
