/*
Package timetable provides leg timetable loading and the in-memory store.

Each leg of the route ships as a small CSV with a departure and an arrival
column in "HH:MM" 24-hour text, a header row, and possibly an Excel BOM.
The package reads those files once at startup and builds an immutable Store
holding the three legs in chain order plus the transfer minutes for the two
interchange stations.

# Basic Usage

	store, err := timetable.NewStoreFromConfig(cfg.Timetable)
	if err != nil {
	    log.Fatal(err)
	}

	first := store.Leg(0)
	buffer, _ := store.TransferMinutes(first.To)

Parse the CSVs once and keep the Store for the process lifetime. The raw
records behind a leg can be re-read at any time with ReadRecords, which the
debug endpoint uses to show the file as it currently is on disk.
*/
package timetable
