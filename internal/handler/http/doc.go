// Package http implements the development stand-in for the spreadsheet
// backend.
//
// The stand-in speaks the same protocol as the real endpoint: every call is
// a POST of a JSON object to /exec tagged by its "action" field, answered
// with a {result: "success" | "error", ...} envelope. A credential that is
// not genuine is answered with 401 "Invalid token"; a genuine but stale one
// with an envelope carrying "Token expired". Both are the expiry markers
// clients react to.
package http
