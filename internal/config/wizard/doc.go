// Package wizard implements the interactive configuration wizard behind
// "vnetplan init". It asks a handful of questions and produces a Config
// ready to be written to disk.
package wizard
