// Package extract turns a text sample into the sorted inventory of distinct
// non-Cyrillic code points used to document a language's orthography.
//
// The pipeline NFC-normalizes the whole sample, collects distinct code
// points, drops everything inside the Cyrillic Unicode blocks (including the
// supplementary-plane Extended-D block), and orders the remainder by code
// point. Results are written one character per line to
// <language>_unique_characters.txt in the configured output directory.
//
// Input comes either from pasted text terminated by a sentinel line or from
// a .txt file decoded with byte-order-mark detection. The interactive
// prompting itself lives in the command layer; this package only supplies
// the readers and validation predicates it retries on.
package extract
