// Package store provides the key-value persistence layer for site
// content. Each key holds one JSON document: the site configuration or
// a whole collection. Implementations must be safe for concurrent use.
package store

import (
	"encoding/json"
	"errors"
)

// Fixed keys partitioning the site content.
const (
	KeyConfig   = "config"
	KeyLeads    = "leads"
	KeyBlogs    = "blogs"
	KeyServices = "services"
)

// ErrNotFound is returned by Load when a key has never been saved.
var ErrNotFound = errors.New("store: key not found")

// Store reads and writes JSON documents by key.
type Store interface {
	Load(key string) (json.RawMessage, error)
	Save(key string, value json.RawMessage) error
}
