package verilog

// Version is the library version string.
const Version = "0.1.0"
