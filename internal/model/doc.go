// Package model defines the core data structures used throughout
// the icon downloader.
//
// # IconRequest
//
// IconRequest is a fully resolved download request. It is built by the
// resolver and deterministically derives both the CDN URL and the local
// filename:
//
//	req.URL("https://render.albiononline.com/v1/item/")
//	req.FileName() // e.g. "Cleric Robe 6.1 Excellent.png"
//
// # Quality
//
// Quality wraps the 1-5 item quality scale and knows its display word
// ("Good", "Outstanding", "Excellent", "Masterpiece"); Common is never
// spelled out in filenames.
package model
