// Package pagegrab discovers and extracts structured content (data tables
// and main article text) from arbitrary HTML documents, and resolves
// downloadable file locations for documents hosted on third-party cloud
// services (Google, Dropbox, Box, OneDrive/SharePoint).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/) or their domain
// (cloud/).
package pagegrab
