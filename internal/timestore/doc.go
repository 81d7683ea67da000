// Package timestore persists sync state between runs: the four anchor
// timestamps from the last manual sync, so they can be offered as
// defaults, and a history of completed syncs for the times command.
package timestore
