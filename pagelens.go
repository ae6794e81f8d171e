// Package pagelens analyzes a single webpage and extracts structured
// facets of it: tables, hyperlinks, colors, images, performance metrics,
// and SEO metrics. Results are value records suitable for interactive
// display and CSV/HTML export.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/).
package pagelens
