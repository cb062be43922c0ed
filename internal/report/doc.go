// Package report renders keyboard rankings as the similarity CSV file and as
// JSON.
//
// The CSV holds both rankings in one table: a label row names each ranking in
// the keyboard_id column, followed by that ranking's rows numbered from 1.
package report
