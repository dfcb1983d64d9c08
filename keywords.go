package verilog

// Keyword tables. Each standard lists only the symbols it introduced;
// the flattened per-standard views are built at init by unioning the
// base chains from standard.go. Compiler directives (backtick-prefixed)
// live in the same introduction lists and additionally in their own
// table, which classification consults independently of the active
// standard.

// introduced maps each standard to the symbols first reserved by it.
var introduced = [numStandards][]string{
	Std1995: {
		"always", "and", "assign", "begin", "buf", "bufif0", "bufif1",
		"case", "casex", "casez", "cmos", "deassign", "default",
		"defparam", "disable", "edge", "else", "end", "endcase",
		"endfunction", "endmodule", "endprimitive", "endspecify",
		"endtable", "endtask", "event", "for", "force", "forever",
		"fork", "function", "highz0", "highz1", "if", "ifnone",
		"initial", "inout", "input", "integer", "join", "large",
		"macromodule", "medium", "module", "nand", "negedge", "nmos",
		"nor", "not", "notif0", "notif1", "or", "output", "parameter",
		"pmos", "posedge", "primitive", "pull0", "pull1", "pulldown",
		"pullup", "rcmos", "real", "realtime", "reg", "release",
		"repeat", "rnmos", "rpmos", "rtran", "rtranif0", "rtranif1",
		"scalared", "small", "specify", "specparam", "strong0",
		"strong1", "supply0", "supply1", "table", "task", "time",
		"tran", "tranif0", "tranif1", "tri", "tri0", "tri1", "triand",
		"trior", "trireg", "vectored", "wait", "wand", "weak0",
		"weak1", "while", "wire", "wor", "xnor", "xor",

		"`celldefine", "`default_nettype", "`define", "`else",
		"`endcelldefine", "`endif", "`ifdef", "`include",
		"`nounconnected_drive", "`resetall", "`timescale",
		"`unconnected_drive", "`undef",
	},
	Std2001: {
		"automatic", "cell", "config", "design", "endconfig",
		"endgenerate", "generate", "genvar", "incdir", "include",
		"instance", "liblist", "library", "localparam",
		"noshowcancelled", "pulsestyle_ondetect", "pulsestyle_onevent",
		"showcancelled", "signed", "unsigned", "use",

		"`elsif", "`ifndef", "`line",
	},
	Std2005: {
		"uwire",

		"`begin_keywords", "`end_keywords", "`pragma",
	},
	StdSV2005: {
		"alias", "always_comb", "always_ff", "always_latch", "assert",
		"assume", "before", "bind", "bins", "binsof", "bit", "break",
		"byte", "chandle", "class", "clocking", "const", "constraint",
		"context", "continue", "cover", "covergroup", "coverpoint",
		"cross", "dist", "do", "endclass", "endclocking", "endgroup",
		"endinterface", "endpackage", "endprogram", "endproperty",
		"endsequence", "enum", "expect", "export", "extends", "extern",
		"final", "first_match", "foreach", "forkjoin", "iff",
		"ignore_bins", "illegal_bins", "import", "inside", "int",
		"interface", "intersect", "join_any", "join_none", "local",
		"logic", "longint", "matches", "modport", "new", "null",
		"package", "packed", "priority", "program", "property",
		"protected", "pure", "rand", "randc", "randcase",
		"randsequence", "ref", "return", "sequence", "shortint",
		"shortreal", "solve", "static", "string", "struct", "super",
		"tagged", "this", "throughout", "timeprecision", "timeunit",
		"type", "typedef", "union", "unique", "var", "virtual", "void",
		"wait_order", "wildcard", "with", "within",
	},
	StdSV2009: {
		"accept_on", "checker", "endchecker", "eventually", "global",
		"implies", "let", "nexttime", "reject_on", "restrict",
		"s_always", "s_eventually", "s_nexttime", "s_until",
		"s_until_with", "strong", "sync_accept_on", "sync_reject_on",
		"unique0", "until", "until_with", "untyped", "weak",

		"`__FILE__", "`__LINE__", "`undefineall",
	},
	StdSV2012: {
		"implements", "interconnect", "nettype", "soft",
	},
	StdSV2017: {
		// 1800-2017 reserved no new words.
	},
	StdVAMS: {
		"above", "abs", "absdelay", "ac_stim", "acos", "acosh",
		"aliasparam", "analog", "analysis", "asin", "asinh", "assert",
		"atan", "atan2", "atanh", "branch", "ceil", "connect",
		"connectmodule", "connectrules", "cos", "cosh", "cross",
		"ddt", "ddt_nature", "ddx", "discipline", "discrete",
		"domain", "driver_update", "endconnectrules", "enddiscipline",
		"endnature", "endparamset", "exclude", "exp", "final_step",
		"flicker_noise", "floor", "flow", "from", "ground", "hypot",
		"idt", "idt_nature", "idtmod", "inf", "initial_step",
		"laplace_nd", "laplace_np", "laplace_zd", "laplace_zp",
		"last_crossing", "limexp", "ln", "log", "max", "merged",
		"min", "nature", "net_resolution", "noise_table", "paramset",
		"potential", "pow", "resolveto", "sin", "sinh", "slew",
		"sqrt", "string", "tan", "tanh", "timer", "transition",
		"units", "white_noise", "wreal", "zi_nd", "zi_np", "zi_zd",
		"zi_zp",

		"`default_discipline", "`default_transition",
	},
}

// gatePrimitiveList names the built-in gate primitives, all present
// since 1364-1995.
var gatePrimitiveList = []string{
	"and", "buf", "bufif0", "bufif1", "cmos", "nand", "nmos", "nor",
	"not", "notif0", "notif1", "or", "pmos", "pulldown", "pullup",
	"rcmos", "rnmos", "rpmos", "rtran", "rtranif0", "rtranif1",
	"tran", "tranif0", "tranif1", "xnor", "xor",
}

var (
	// flattened holds, per standard, the union of the symbols
	// reserved by that standard and its bases. Values are the
	// earliest introducing standard.
	flattened [numStandards]map[string]Standard

	// compDirectives maps backtick-prefixed directives to their
	// introducing standard, across all standards.
	compDirectives = make(map[string]Standard)

	// gatePrimitives maps gate primitive names to 1364-1995.
	gatePrimitives = make(map[string]Standard)
)

func init() {
	for std := Std1995; std < numStandards; std++ {
		m := make(map[string]Standard)
		for _, base := range bases[std] {
			for _, sym := range introduced[base] {
				if _, ok := m[sym]; !ok {
					m[sym] = base
				}
			}
		}
		flattened[std] = m
	}
	for std := Std1995; std < numStandards; std++ {
		for _, sym := range introduced[std] {
			if sym[0] != '`' {
				continue
			}
			if _, ok := compDirectives[sym]; !ok {
				compDirectives[sym] = std
			}
		}
	}
	for _, sym := range gatePrimitiveList {
		gatePrimitives[sym] = Std1995
	}
}

// IsKeyword reports whether sym is reserved under the process-wide
// active standard, returning the earliest standard that reserved it.
func IsKeyword(sym string) (Standard, bool) {
	return defaultLanguage.IsKeyword(sym)
}

// IsCompDirect reports whether sym is a compiler directive (a
// backtick-prefixed symbol such as "`define"), returning the standard
// that introduced it. Directive classification does not depend on the
// active standard.
func IsCompDirect(sym string) (Standard, bool) {
	std, ok := compDirectives[sym]
	return std, ok
}

// IsGatePrim reports whether sym is a built-in gate primitive,
// returning the standard that introduced it. Gate classification does
// not depend on the active standard.
func IsGatePrim(sym string) (Standard, bool) {
	std, ok := gatePrimitives[sym]
	return std, ok
}

// Keywords returns the flattened symbol table for the process-wide
// active standard. The returned map is shared and must not be modified.
func Keywords() map[string]Standard {
	return defaultLanguage.Keywords()
}

// KeywordsFor returns the flattened symbol table for the given
// standard. The returned map is shared and must not be modified.
func KeywordsFor(std Standard) map[string]Standard {
	if std >= numStandards {
		std = Maximum()
	}
	return flattened[std]
}
