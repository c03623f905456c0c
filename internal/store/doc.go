// Package store persists run reports on disk.
//
// Reports are written as indented JSON, one file per run id, with big
// integers hex-encoded. Writes go through a temp file and rename so a crash
// never leaves a half-written report behind. Private keys are never part of
// a report and so never reach disk.
package store
