// Package links builds the hypermedia relations attached to entity payloads.
package links

import "fmt"

// Link is one hypermedia relation on an entity representation.
type Link struct {
	Rel    string `json:"rel"`
	Method string `json:"method"`
	Href   string `json:"href"`
}

// For returns the fixed relation set for an entity: self, update and delete,
// in that order, all pointing at basePath/id.
func For(basePath string, id uint) []Link {
	href := fmt.Sprintf("%s/%d", basePath, id)
	return []Link{
		{Rel: "self", Method: "GET", Href: href},
		{Rel: "update", Method: "PUT", Href: href},
		{Rel: "delete", Method: "DELETE", Href: href},
	}
}
