// Package tsv reads and writes tab separated sentence-pair files
//
// Design choices:
// - The dialect is the spreadsheet "excel-tab" one: tab delimiter, double-quote quoting,
//   doubled quotes inside quoted fields, quoted fields may span lines, \n, \r and \r\n all end a record.
// - Parsing is lenient: a quote inside an unquoted field is literal, text after a closing quote is kept.
// - A blank line is a record with zero fields. encoding/csv silently drops those, which would
//   change the row total, so the reader is a small rune state machine instead.
// - Invalid UTF-8 and oversized fields are hard errors carrying the line number.
// - Writers quote only when needed (tab, quote, CR or LF in the field) and end records with \r\n.
// - Paths ending in .gz are compressed/decompressed transparently.
package tsv
