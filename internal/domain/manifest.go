package domain

// Manifest is the evaluated form of a dependency manifest: the gem names
// and source URIs it declares, in declaration order.
type Manifest struct {
	Path         string   `json:"path"`
	Dependencies []string `json:"dependencies"`
	Sources      []string `json:"sources"`
}
