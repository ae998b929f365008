package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind            string
	Port            int
	APIKey          string // Empty disables API key authentication
	BuilderCapacity int    // Initial fragment capacity for concat requests
	MaxBodyBytes    int64  // Request body limit for raw byte endpoints
}

// HexResponse is returned by the hex dump endpoint
type HexResponse struct {
	Hex    string `json:"hex"`
	Length int    `json:"length"`
}

// IntEncodeRequest asks for a fixed-width integer encoding
type IntEncodeRequest struct {
	Value int64  `json:"value"`
	Width int    `json:"width"` // 16 or 32
	Order string `json:"order"` // "big" (default) or "little"
}

// IntDecodeRequest asks for a fixed-width integer to be read from a hex dump
type IntDecodeRequest struct {
	Hex    string `json:"hex"`
	Offset int    `json:"offset"`
	Width  int    `json:"width"`
	Order  string `json:"order"`
}

// IntResponse carries an integer and its encoded form
type IntResponse struct {
	Value int64  `json:"value"`
	Hex   string `json:"hex"`
	Width int    `json:"width"`
	Order string `json:"order"`
}

// ConcatRequest lists fragments to join with a text builder
type ConcatRequest struct {
	Fragments []string `json:"fragments"`
}

// CompareRequest holds two texts to compare
type CompareRequest struct {
	A string `json:"a"`
	B string `json:"b"`
}

// CompareResponse reports CompareTo and Equal results
type CompareResponse struct {
	Compare int  `json:"compare"`
	Equal   bool `json:"equal"`
}

// TextRequest carries a text body for create and update
type TextRequest struct {
	Text string `json:"text"`
}

// TextResponse describes a stored or computed text
type TextResponse struct {
	ID     string `json:"id,omitempty"`
	Text   string `json:"text"`
	Length int    `json:"length"`
}
