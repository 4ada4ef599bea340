// Package utils provides helpers for reading loosely typed data.
// Lookup and StringAt read dotted paths out of decoded JSON objects with a default,
// which is how raw provider records are normalized.
package utils
