// Package download provides the fetch-loop orchestration for the icon
// downloader.
//
// # Manager
//
// The Manager runs the whole pipeline over a downloads file:
//
//  1. Read all lines, preserving comments and blanks
//  2. Parse and resolve each data line against the item table
//  3. Fetch the icon and write it to the output directory
//  4. Rewrite the input file, retaining only the lines that failed
//
// # Basic Usage
//
//	manager := download.NewManager(settings, table, func(event download.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Sequencing
//
// Processing is strictly sequential: one line is fully resolved,
// fetched, and written before the next begins. The lists are
// user-curated and small, and the CDN documents no concurrency
// contract.
//
// # Outcomes
//
// Every data line gets a LineOutcome (success, warning, skipped
// invalid, unknown name, network failure). Outcomes drive both the
// console report and which lines survive the end-of-run rewrite; the
// rewrite itself is a single atomic file replace.
package download
