// Package utils provides internal utility functions for commute-routes.
// This package is not intended to be imported by external code.
//
// It contains the clock-text conversions shared by timetable ingestion and
// response formatting: "HH:MM" text to minutes since midnight and back.
package utils
