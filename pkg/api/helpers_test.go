package api

import (
	"io"
	"net/http"

	json "github.com/json-iterator/go"
)

func decodeJSONBody(r *http.Request, target interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, target)
}
