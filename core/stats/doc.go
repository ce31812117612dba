// Package stats is a client for the public basketball stats API.
//
// Responses from the API are tabular: each result set carries a header list
// and positional rows. ResultSet.Rows gives named access to those rows.
//
// Client.FetchRoster implements reconcile.RosterFetcher over the team roster
// endpoint, and PlayerIndex implements reconcile.ReferenceSource over the
// all-players endpoint. Requests carry browser-like headers and are retried
// with exponential backoff on transport errors, 429 and 5xx responses.
package stats
