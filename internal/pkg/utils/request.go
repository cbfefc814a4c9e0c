package utils

import (
	"io"
	"net/http"
	"strconv"
	"transactions-client/internal/pkg/constvars"
	"transactions-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// ParseJSONBody decodes the request body into dst. An empty body leaves dst
// untouched.
func ParseJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return exceptions.ErrCannotParseJSON(err)
	}
	return nil
}

// ParsePageQuery reads the page query parameter, defaulting to the first page.
func ParsePageQuery(r *http.Request) (int, error) {
	pageStr := r.URL.Query().Get(constvars.URLQueryParamPage)
	if pageStr == "" {
		return 0, nil
	}
	page, err := strconv.Atoi(pageStr)
	if err != nil {
		return 0, exceptions.ErrCannotParseJSON(err)
	}
	return page, nil
}
