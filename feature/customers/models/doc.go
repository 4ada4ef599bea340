// Package models defines the Customer table mapping and its JSON views.
package models
