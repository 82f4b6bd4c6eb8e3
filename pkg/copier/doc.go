/*
Package copier copies a single file together with its permission bits and
access/modification times.

	+-------------+      +-------------+      +-------------+
	|   Source    | ---> |  Temp file  | ---> | Destination |
	| (links      |      | (mode,      |      | (rename,    |
	|  resolved)  |      |  times)     |      |  atomic)    |
	+-------------+      +-------------+      +-------------+

🎯 Purpose:
- Copies bytes and metadata in one step
- Replaces the destination atomically so a failed copy leaves it untouched
- Expands a source pattern that must match exactly one file, when asked to
*/
package copier
