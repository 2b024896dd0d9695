package ai

import "strings"

// Client is an entry in the known-client directory.
type Client struct {
	Name     string `json:"client"`
	Location string `json:"location"`
}

var sampleClients = []Client{
	{Name: "Kigali Heights", Location: "Kigali, Rwanda"},
	{Name: "Marriott Hotel", Location: "Kigali, Rwanda"},
	{Name: "Radisson Blu", Location: "Kigali, Rwanda"},
	{Name: "Bank of Kigali", Location: "Nyarugenge, Kigali"},
	{Name: "MTN Rwanda", Location: "Nyarutarama, Kigali"},
	{Name: "RwandAir", Location: "Kigali, Rwanda"},
}

// SuggestClient completes a partially typed client name from the
// directory. Queries shorter than 3 characters never match; that is
// too little signal to pick a client by.
func SuggestClient(name string) (Client, bool) {
	if len(name) <= 2 {
		return Client{}, false
	}
	q := strings.ToLower(name)
	for _, c := range sampleClients {
		if strings.Contains(strings.ToLower(c.Name), q) {
			return c, true
		}
	}
	return Client{}, false
}
