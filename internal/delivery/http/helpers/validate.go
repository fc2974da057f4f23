package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"capgeticket/internal/domain"
)

// MsgTrailingData is reported when the body carries anything after the first JSON value.
const MsgTrailingData = "Cuerpo de la petición ilegible: contenido adicional tras el documento JSON"

// Validator is implemented by request DTOs that support validation.
// Validate returns a slice of error messages; nil or empty means valid.
type Validator interface {
	Validate() []string
}

// DecodeJSON decodes the request body into dest (with DisallowUnknownFields).
// It returns a 415 HTTPError when the body is not declared as JSON and a 400 HTTPError
// when the body cannot be parsed. An empty body leaves dest untouched and reports ok=false.
func DecodeJSON(r *http.Request, dest any) (bool, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		return false, NewHTTPError(http.StatusUnsupportedMediaType, LabelUnsupportedMedia,
			"El tipo de contenido '"+r.Header.Get("Content-Type")+"' no está soportado. Use application/json")
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, NewHTTPError(http.StatusBadRequest, LabelBadRequest, "Cuerpo de la petición ilegible: "+err.Error())
	}
	// The body must hold exactly one JSON value.
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return false, NewHTTPError(http.StatusBadRequest, LabelBadRequest, MsgTrailingData)
	}
	return true, nil
}

// Validate runs v.Validate and folds the messages into a single invalid-argument error.
func Validate(v Validator) error {
	if errs := v.Validate(); len(errs) > 0 {
		return domain.InvalidArgument(strings.Join(errs, "; "))
	}
	return nil
}
