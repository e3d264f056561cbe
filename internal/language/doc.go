// Package language normalizes the 3-letter language codes carried in manifest
// records and renders display names for CLI output. Codes outside the table
// pass through unchanged so the manifest never loses information.
package language
