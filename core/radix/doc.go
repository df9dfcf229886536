// Package radix contains the mixed-radix indexing core: capacity
// arithmetic, the index/string codec, and the width growth policy. It
// never imports app, writers, or cli; keep it domain-only.
//
// Strings are positional numerals over an Alphabet: the alphabet provides
// the digit-to-symbol map and its size is the base.
package radix
