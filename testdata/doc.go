// Package main placed in testdata made "main" to avoid being imported by users who somehow
// decide this is a good idea – it is not. Files here are txtar archives: the comment holds
// command line arguments, the "stdout" file holds the expected output and every other file
// is extracted into a temporary directory the command runs in.
package main
