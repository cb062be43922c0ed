// Package match compares a language's character inventory with keyboard
// layouts and ranks the layouts.
//
// Coverage is the share of the language's characters a keyboard offers;
// overlap is the share of the keyboard's characters the language uses. Both
// rankings are stable, descending, and break ties on the other metric.
package match
