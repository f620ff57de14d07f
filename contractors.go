// Package contractors provides a directory of local home-service
// contractors in the Denver area. It lists businesses from a places API,
// captures leads through inquiry forms, and validates and searches a
// small set of reference data (service keywords and locations).
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, csv/, http/).
package contractors
