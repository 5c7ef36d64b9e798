package messaging

import "encoding/json"

type envelope struct {
	Message *string `json:"Message"`
}

// UnwrapBody returns the inner JSON document of a message body. Bodies arrive
// either bare or wrapped as {"Message": "<json-string>"} by upstream relays;
// both forms decode to the same payload.
func UnwrapBody(data []byte) []byte {
	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Message != nil {
		return []byte(*env.Message)
	}
	return data
}
