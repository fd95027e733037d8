// Package matshell is an in-memory playground for named uint32 matrices:
// a fixed-capacity registry, elementwise and bitwise operations, and a compact
// binary file format, all driven from an interactive shell.
//
// Layout:
//
//	matrix/   the Matrix entity: create, release, randomize, shift, add,
//	            duplicate, equal, display
//	codec/    fixed-field binary Encoder/Decoder plus WriteFile/ReadFile,
//	            with classified I/O errors
//	registry/ slot array with a rotating cursor, insert-with-eviction,
//	            lookup by name, teardown, Prometheus metrics
//	config/   TOML/YAML settings with defaults and env lookup
//	shell/    tokenizer, command dispatch and the REPL loop
//	cmd/      the matshell binary (shell, inspect, version)
//
// Quick session:
//
//	> create a 2 2
//	Created Matrix (a,2,2)
//	> random a 10 15
//	> duplicate a b
//	> add a b c
//	> write c
//	> exit
//
// The binary format is host byte order:
//
//	name_length uint32 | name + NUL | rows uint32 | cols uint32 | rows*cols uint32 | 0xFF
package matshell
