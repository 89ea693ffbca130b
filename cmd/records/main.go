// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"os"

	"parrot-check/internal/detector"
	"parrot-check/internal/records"
)

func main() {
	var (
		recordsFile = flag.String("records-file", "validation-records.yaml", "Path to the validation record store")
		action      = flag.String("action", "", "Action to perform: list, show, remove, clear")
		id          = flag.String("id", "", "Record ID (for show and remove actions)")
		maxEntries  = flag.Int("max-entries", records.DefaultMaxEntries, "Maximum number of records kept in the store")
	)
	flag.Parse()

	if *action == "" {
		fmt.Println("Error: --action is required")
		fmt.Println("Usage: parrot-records --action <list|show|remove|clear> [options]")
		os.Exit(1)
	}

	store := records.NewStore(*recordsFile, *maxEntries)

	switch *action {
	case "list":
		listRecords(store)
	case "show":
		if *id == "" {
			fmt.Println("Error: --id is required for show action")
			os.Exit(1)
		}
		showRecord(store, *id)
	case "remove":
		if *id == "" {
			fmt.Println("Error: --id is required for remove action")
			os.Exit(1)
		}
		removeRecord(store, *id)
	case "clear":
		clearRecords(store)
	default:
		fmt.Printf("Error: Unknown action '%s'\n", *action)
		fmt.Println("Valid actions: list, show, remove, clear")
		os.Exit(1)
	}
}

func listRecords(store *records.Store) {
	all := store.All()
	if len(all) == 0 {
		fmt.Println("No validation records found.")
		return
	}

	fmt.Printf("Found %d validation records:\n\n", len(all))
	for _, record := range all {
		verdict := "VALID"
		if !record.Report.IsValid {
			verdict = "INVALID"
		}
		fmt.Printf("ID: %s\n", record.ID)
		fmt.Printf("Question: %s\n", record.Pair.Question)
		fmt.Printf("Verdict: %s (confidence %.2f, %s)\n",
			verdict, record.Report.Confidence, detector.ConfidenceLevel(record.Report.Confidence))
		if record.Report.ExternalVerificationRequired {
			fmt.Println("External verification required")
		}
		fmt.Printf("Created At: %s\n", record.CreatedAt.Format("2006-01-02 15:04:05"))
		if record.SeenCount > 1 {
			fmt.Printf("Seen: %d times (last %s)\n", record.SeenCount, record.LastSeenAt.Format("2006-01-02 15:04:05"))
		}
		fmt.Println("---")
	}
}

func showRecord(store *records.Store, id string) {
	for _, record := range store.All() {
		if record.ID != id {
			continue
		}
		fmt.Printf("ID: %s\n", record.ID)
		fmt.Printf("Hash: %s\n", record.Hash)
		fmt.Printf("Platform: %s\n", record.Pair.Platform)
		fmt.Printf("Question: %s\n", record.Pair.Question)
		fmt.Printf("Response: %s\n", record.Pair.Response)
		fmt.Printf("Confidence: %.2f (%s)\n", record.Report.Confidence, detector.ConfidenceLevel(record.Report.Confidence))
		fmt.Printf("Valid: %t\n", record.Report.IsValid)
		fmt.Printf("Entity: %s (query: %s)\n", record.Report.Entity.EntityType, record.Report.Entity.Query)
		for _, result := range record.Report.Validators {
			status := "pass"
			if !result.Pass {
				status = "FAIL"
			}
			fmt.Printf("  %-36s %s  %.2f  %s\n", result.Name, status, result.Score, result.Details)
		}
		for _, issue := range record.Report.Issues {
			fmt.Printf("Issue: %s\n", issue)
		}
		fmt.Printf("Notes: %s\n", record.Report.Notes)
		return
	}

	fmt.Printf("Error: record %s not found\n", id)
	os.Exit(1)
}

func removeRecord(store *records.Store, id string) {
	if !store.Remove(id) {
		fmt.Printf("Error: record %s not found\n", id)
		os.Exit(1)
	}
	if err := store.Save(); err != nil {
		fmt.Printf("Error saving record store: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully removed record: %s\n", id)
}

func clearRecords(store *records.Store) {
	count := store.Len()
	store.Clear()
	if err := store.Save(); err != nil {
		fmt.Printf("Error saving record store: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cleared %d validation records\n", count)
}
