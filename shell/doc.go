// SPDX-License-Identifier: MIT

// Package shell is the interactive front end of matshell.
//
// A Session owns one registry.Registry and drives it from text commands, one
// per line, tokenized with shell quoting rules:
//
//	create <name> <rows> <cols>    allocate a zeroed matrix
//	random <name> <low> <high>     fill with values in [low, high]
//	shift  <name> <l|r> <amount>   bitwise shift every element
//	add    <a> <b> <result>        result = a + b (mod 2^32)
//	duplicate <src> <dest>         copy src into a new matrix dest
//	equal  <a> <b>                 compare shape and contents
//	display <name>                 print the matrix
//	read   <file>                  load a matrix file into the registry
//	write  <name>                  save a matrix to <data_dir>/<name>
//	list | stats | help | exit
//
// Results of add and duplicate are computed into fresh matrices before they
// are inserted, so an eviction never releases an operand still in use.
//
// Failures abort only the current command; Run reports them and continues.
package shell
