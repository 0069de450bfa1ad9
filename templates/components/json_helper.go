package components

import (
	"encoding/json"
	"log"
)

// JSON marshals an object to a JSON string, returning "{}" on error.
// Used for htmx attributes such as hx-headers and hx-vals.
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Printf("Error marshaling JSON: %v", err)
		return "{}"
	}
	return string(b)
}
