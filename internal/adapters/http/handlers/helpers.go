package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/listing-search-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/listing-search-service/internal/platform/validator"
)

// validRequest checks req against its struct tags. A rejected request has
// already been answered with a 400 problem when it returns false.
func validRequest(w http.ResponseWriter, r *http.Request, v *validator.Validator, req any) bool {
	err := v.Struct(req)
	if err == nil {
		return true
	}
	dto.WriteErrorResponse(w, r, err)
	return false
}
