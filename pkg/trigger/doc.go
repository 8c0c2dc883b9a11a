// Package trigger defines the request to run tests that editors send to
// tertestrial, and the matching rules between a configured trigger pattern
// and a live trigger.
//
// A Trigger always has a command ("testAll", "testFile", "testFunction" or
// any other string). File and line are optional. In a pattern an absent field
// matches anything; a present field narrows the pattern.
//
// File patterns without regular-expression metacharacters (a dot alone does
// not count) are compared literally. Patterns that contain metacharacters,
// like `\.rs$`, are regular expressions searched in the query's file:
//
//	{"command": "testFile", "file": "\\.rs$"}     matches any *.rs file
//	{"command": "testFile", "file": "main.go"}   matches only main.go
package trigger
