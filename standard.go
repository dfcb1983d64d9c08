package verilog

import (
	"github.com/coregx/coregex"
)

// Standard identifies a Verilog, SystemVerilog, or Verilog-AMS language
// revision. The zero value is the oldest revision, IEEE 1364-1995.
type Standard uint8

const (
	Std1995   Standard = iota // IEEE 1364-1995
	Std2001                   // IEEE 1364-2001
	Std2005                   // IEEE 1364-2005
	StdSV2005                 // IEEE 1800-2005
	StdSV2009                 // IEEE 1800-2009
	StdSV2012                 // IEEE 1800-2012
	StdSV2017                 // IEEE 1800-2017
	StdVAMS                   // Verilog-AMS

	numStandards
)

// standardNames holds the canonical name of each standard, indexed by
// its ordinal.
var standardNames = [numStandards]string{
	Std1995:   "1364-1995",
	Std2001:   "1364-2001",
	Std2005:   "1364-2005",
	StdSV2005: "1800-2005",
	StdSV2009: "1800-2009",
	StdSV2012: "1800-2012",
	StdSV2017: "1800-2017",
	StdVAMS:   "VAMS",
}

// String returns the canonical standard name, such as "1364-1995".
func (s Standard) String() string {
	if s >= numStandards {
		return "unknown"
	}
	return standardNames[s]
}

// Maximum returns the newest IEEE 1800 standard the package supports.
func Maximum() Standard {
	return StdSV2017
}

// bases lists, per standard, the standards whose keyword sets it unions,
// oldest first. Each IEEE 1800 revision is a superset of its predecessor
// and of the newest 1364; Verilog-AMS is a superset of 1364-2005.
var bases = [numStandards][]Standard{
	Std1995:   {Std1995},
	Std2001:   {Std1995, Std2001},
	Std2005:   {Std1995, Std2001, Std2005},
	StdSV2005: {Std1995, Std2001, Std2005, StdSV2005},
	StdSV2009: {Std1995, Std2001, Std2005, StdSV2005, StdSV2009},
	StdSV2012: {Std1995, Std2001, Std2005, StdSV2005, StdSV2009, StdSV2012},
	StdSV2017: {Std1995, Std2001, Std2005, StdSV2005, StdSV2009, StdSV2012, StdSV2017},
	StdVAMS:   {Std1995, Std2001, Std2005, StdVAMS},
}

// vamsNameRE matches the accepted spellings of the Verilog-AMS standard
// ("AMS", "VAMS", any case).
var vamsNameRE = mustCompile(`(?i)^v?ams$`)

// mustCompile compiles a regex pattern, panicking on error. For
// package-level patterns that are known to be valid.
func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// ParseStandard converts a standard name to a Standard. Besides the
// canonical names it accepts the historical aliases "1995", "2001",
// "1364-2001-noconfig", "sv31", "latest", and any spelling matched by
// case-insensitive "v?ams". Unknown names return a *BadStandardError.
func ParseStandard(name string) (Standard, error) {
	switch name {
	case "1364-1995", "1995":
		return Std1995, nil
	case "1364-2001", "2001", "1364-2001-noconfig":
		return Std2001, nil
	case "1364-2005":
		return Std2005, nil
	case "1800-2005", "sv31":
		return StdSV2005, nil
	case "1800-2009":
		return StdSV2009, nil
	case "1800-2012":
		return StdSV2012, nil
	case "1800-2017", "latest":
		return StdSV2017, nil
	}
	if vamsNameRE.MatchString(name) {
		return StdVAMS, nil
	}
	return 0, &BadStandardError{Input: name}
}
