// Package ports holds the interfaces the layers meet at. Handlers call the
// ListingService the app package implements; the app package calls the
// ListingClient the OData adapter implements.
//
// Listing data crosses both boundaries as [listing.Envelope] values so the
// upstream body reaches the caller unchanged.
package ports
