// Package http provides an HTTP client configured for the Albion
// render CDN.
//
// The Client in this package handles:
//   - User-Agent headers
//   - File downloads streamed to disk with progress tracking
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient(15*time.Second, "albion-icon-downloader")
//
//	client.DownloadFile(ctx, iconURL, "/path/to/icon.png", func(written, total int64) {
//	    fmt.Printf("%.1f%%\n", float64(written)/float64(total)*100)
//	})
//
// # Progress Tracking
//
// The ProgressWriter type can be used to wrap any io.Writer for progress tracking:
//
//	pw := &http.ProgressWriter{
//	    Writer:   file,
//	    Total:    contentLength,
//	    OnUpdate: func(written, total int64) { /* update UI */ },
//	}
package http
