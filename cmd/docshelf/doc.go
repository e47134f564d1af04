// Command docshelf classifies project documents against a registry of
// canonical locations, reports misplaced and duplicated documents, and
// migrates them with backups and reference rewriting.
package main
