// Package bbsdoc archives a bulletin board's threaded posts into a single
// document. It reads the board's XML index, resolves every post page,
// extracts and cleans each post body, and writes one formatted document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, etree/, htmltomarkdown/).
package bbsdoc
