// Package language describes the language codes that name character
// inventories. Codes are free-form (extraction accepts anything usable in a
// file name), so lookups here only decorate output and never reject a code.
package language
