// Package utils provides common utility functions for the roster-manager application.
// It includes helpers for loose type conversion of decoded JSON values and for
// decoding JSON objects while keeping their member order.
package utils
