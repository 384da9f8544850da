package helpers

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into dest. On failure it writes a 400
// JSON error and returns false; callers should return immediately in that
// case. Unknown fields are ignored.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
