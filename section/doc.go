// Package section defines the fixed-size header at the start of a column blob.
//
// A blob starts with a 32-byte Header followed by the float, int and bool
// sections:
//
//	+--------+---------+------------------------------------------------------+
//	| Offset | Size    | Field                                                |
//	+--------+---------+------------------------------------------------------+
//	| 0      | 2       | Options: endianness, checksum flag, magic (LE)       |
//	| 2      | 1       | Encodings: float (bits 0-3), int (bits 4-7)          |
//	| 3      | 1       | Compression applied to every section                 |
//	| 4      | 4       | Float count                                          |
//	| 8      | 4       | Int count                                            |
//	| 12     | 4       | Bool count                                           |
//	| 16     | 4       | Int section offset                                   |
//	| 20     | 4       | Bool section offset                                  |
//	| 24     | 8       | xxHash64 of everything after the header              |
//	| 32     | ...     | Float section, int section, bool section             |
//	+--------+---------+------------------------------------------------------+
//
// The options word is always little-endian so the byte order of the remaining
// fields can be read from it.
package section
